package watermark

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		label   string
		want    Kind
		wantErr bool
	}{
		{"Text watermark", TextKind, false},
		{"Image watermark", ImageKind, false},
		{"text watermark", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseKind(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error = %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestKindLabelsMatchKinds(t *testing.T) {
	labels := KindLabels()
	kinds := Kinds()
	if len(labels) != len(kinds) {
		t.Fatalf("len(KindLabels()) = %d, want %d", len(labels), len(kinds))
	}
	for i := range kinds {
		if labels[i] != string(kinds[i]) {
			t.Errorf("KindLabels()[%d] = %q, want %q", i, labels[i], kinds[i])
		}
	}
}
