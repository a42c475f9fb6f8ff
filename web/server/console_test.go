package server

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestWebLogger_SendsMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-test", messageChan)

	logger.Printf("Rendering %dx%d in %d tiles...\n", 64, 32, 2)
	logger.Printf("Render completed\n")

	expected := []string{"Rendering 64x32 in 2 tiles...\n", "Render completed\n"}
	for i, want := range expected {
		select {
		case msg := <-messageChan:
			if msg.Message != want {
				t.Errorf("Message %d: expected %q, got %q", i, want, msg.Message)
			}
			if msg.RenderID != "render-test" {
				t.Errorf("Expected render ID 'render-test', got %q", msg.RenderID)
			}
			if msg.Level != "info" {
				t.Errorf("Expected level 'info', got %q", msg.Level)
			}
			if time.Since(msg.Timestamp) > time.Second {
				t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Timeout waiting for message %d", i+1)
		}
	}
}

func TestWebLogger_ChannelFullDoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("render-full", messageChan)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			logger.Printf("Message %d\n", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full channel")
	}

	if msg := <-messageChan; msg.Message != fmt.Sprintf("Message %d\n", 0) {
		t.Errorf("Expected first message to be kept, got %q", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	// Must not panic
	NewWebLogger("render-nil", nil).Printf("Test message with nil channel\n")
}

func TestWebLogger_LogfKeepsLevel(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	NewWebLogger("render-level", messageChan).Logf(LevelError, "Render failed: %v\n", "boom")

	msg := <-messageChan
	if msg.Level != LevelError {
		t.Errorf("Expected level %q, got %q", LevelError, msg.Level)
	}
	if msg.Message != "Render failed: boom\n" {
		t.Errorf("Unexpected message %q", msg.Message)
	}
}

func TestOutcomeLevel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Level
	}{
		{"success", nil, LevelInfo},
		{"client gone", fmt.Errorf("render: %w", context.Canceled), LevelWarning},
		{"deadline", context.DeadlineExceeded, LevelWarning},
		{"failure", errors.New("invalid tile size"), LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeLevel(tt.err); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
