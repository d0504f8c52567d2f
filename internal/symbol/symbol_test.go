package symbol

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		hostility Hostility
		want      StyleDescriptor
	}{
		{HostilitySafe, StyleDescriptor{RingStyle: RingDotted, Radius: 0.2, LineWidth: 1.5}},
		{HostilityModerate, StyleDescriptor{RingStyle: RingSolid, Radius: 0.2, LineWidth: 1.5}},
		{HostilityHazardous, StyleDescriptor{RingStyle: RingDouble, Radius: 0.2, LineWidth: 2.0}},
	}

	for _, tt := range tests {
		t.Run(string(tt.hostility), func(t *testing.T) {
			got, err := Resolve(tt.hostility)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.hostility, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.hostility, diff)
			}
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	for _, value := range []string{"", "unknown", "Safe", "HAZARDOUS", " safe"} {
		_, err := Resolve(Hostility(value))
		if !errors.Is(err, ErrInvalidHostility) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidHostility", value, err)
		}
	}
}

func TestResolve_ErrorMessageListsAcceptedValues(t *testing.T) {
	_, err := Resolve("unknown")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"hostility", "unknown", "safe", "moderate", "hazardous"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestStyleDescriptor_Radii(t *testing.T) {
	for _, h := range Hostilities {
		style, err := Resolve(h)
		if err != nil {
			t.Fatal(err)
		}
		radii := style.Radii()

		switch style.RingStyle {
		case RingDouble:
			if len(radii) != 2 {
				t.Fatalf("%s: got %d radii, want 2", h, len(radii))
			}
			if d := radii[0] - radii[1]; math.Abs(d-0.05) > 1e-12 {
				t.Errorf("%s: ring spacing = %v, want 0.05", h, d)
			}
		default:
			if len(radii) != 1 || radii[0] != style.Radius {
				t.Errorf("%s: radii = %v, want [%v]", h, radii, style.Radius)
			}
		}
	}
}

func TestParseHostility(t *testing.T) {
	tests := []struct {
		in      string
		want    Hostility
		wantErr bool
	}{
		{"safe", HostilitySafe, false},
		{"Moderate", HostilityModerate, false},
		{"  HAZARDOUS ", HostilityHazardous, false},
		{"", "", true},
		{"dangerous", "", true},
	}

	for _, tt := range tests {
		got, err := ParseHostility(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHostility(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidHostility) {
			t.Errorf("ParseHostility(%q) error = %v, want ErrInvalidHostility", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHostility(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFiniteness(t *testing.T) {
	tests := []struct {
		in      string
		want    Finiteness
		wantErr bool
	}{
		{"finite", FinitenessFinite, false},
		{"Infinite", FinitenessInfinite, false},
		{"eternal", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFiniteness(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFiniteness(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidFiniteness) {
			t.Errorf("ParseFiniteness(%q) error = %v, want ErrInvalidFiniteness", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFiniteness(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"valid", Request{Code: "A1", Hostility: HostilitySafe, Finiteness: FinitenessFinite}, nil},
		{"bad hostility", Request{Code: "X", Hostility: "unknown", Finiteness: FinitenessFinite}, ErrInvalidHostility},
		{"bad finiteness", Request{Code: "X", Hostility: HostilitySafe, Finiteness: "forever"}, ErrInvalidFiniteness},
		{"empty finiteness", Request{Code: "X", Hostility: HostilityModerate}, ErrInvalidFiniteness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("H9", "Hazardous", "Infinite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Request{Code: "H9", Hostility: HostilityHazardous, Finiteness: FinitenessInfinite}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("NewRequest mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewRequest("X", "unknown", "finite"); !errors.Is(err, ErrInvalidHostility) {
		t.Errorf("expected ErrInvalidHostility, got %v", err)
	}
}
