package roadview

import (
	"errors"
	"testing"
)

func TestViewStateStringFormat(t *testing.T) {
	v := ViewState{CenterX: 10, CenterY: -20, Zoom: 3}
	if got, want := v.String(), "10 -20 3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseViewStateRoundTrip(t *testing.T) {
	v := ViewState{CenterX: 100, CenterY: -200, Zoom: 5}
	got, err := ParseViewState(v.String())
	if err != nil {
		t.Fatalf("ParseViewState() error = %v", err)
	}
	if got != v {
		t.Errorf("ParseViewState() = %+v, want %+v", got, v)
	}
}

func TestParseViewStateRejectsMalformed(t *testing.T) {
	_, err := ParseViewState("not a view state")
	if !errors.Is(err, ErrInvalidViewState) {
		t.Errorf("ParseViewState() error = %v, want ErrInvalidViewState", err)
	}
}
