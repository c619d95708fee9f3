package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies play calls are dropped without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Initialized() {
		t.Fatal("Expected uninitialized manager")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlaySwipe(-1)
	sm.PlaySwipe(1)
	sm.PlaySpringBack()
	sm.PlayEmpty()
	sm.Cleanup()
}

// TestSoundManagerVolumeClamped verifies out-of-range volumes are clamped
func TestSoundManagerVolumeClamped(t *testing.T) {
	if sm := NewSoundManager(2); sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", sm.volume)
	}
	if sm := NewSoundManager(-1); sm.volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", sm.volume)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5)

	// Speaker initialization fails in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if !sm.Initialized() {
		t.Error("Expected initialized after successful Initialize")
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlaySwipe(1)
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected uninitialized after Cleanup")
	}

	// Operations after cleanup are dropped
	sm.PlaySpringBack()
	sm.Cleanup()
}
