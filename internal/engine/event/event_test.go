package event

import "testing"

func TestKeyboardDown(t *testing.T) {
	kb := NewKeyboard(ModShift, KeyA, KeySpace)

	if !kb.Down(KeyA) || !kb.Down(KeySpace) {
		t.Error("expected A and Space to be held")
	}
	if kb.Down(KeyReturn) {
		t.Error("Return should not be held")
	}
	if kb.Len() != 2 {
		t.Errorf("Len() = %d, want 2", kb.Len())
	}
	if !kb.Mods.Has(ModShift) || kb.Mods.Has(ModCtrl) {
		t.Errorf("unexpected modifiers %08b", kb.Mods)
	}

	var empty Keyboard
	if empty.Down(KeyA) {
		t.Error("zero snapshot should hold nothing")
	}
}

func TestMouseDown(t *testing.T) {
	tests := []struct {
		buttons uint32
		button  MouseButton
		want    bool
	}{
		{0, ButtonLeft, false},
		{1, ButtonLeft, true},
		{1, ButtonRight, false},
		{1 << 2, ButtonRight, true},
		{1 << 1, ButtonMiddle, true},
		{0xff, ButtonNone, false},
	}

	for _, tt := range tests {
		m := Mouse{Buttons: tt.buttons}
		if got := m.Down(tt.button); got != tt.want {
			t.Errorf("Mouse{%b}.Down(%s) = %v, want %v", tt.buttons, tt.button, got, tt.want)
		}
	}
}
