package cards

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Type
		wantErr bool
	}{
		{name: "exact", input: "power", want: TypePower},
		{name: "mixed case", input: "Ally-Universe", want: TypeAllyUniverse},
		{name: "whitespace", input: "  character ", want: TypeCharacter},
		{name: "unknown", input: "vehicle", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseType(%q) error type = %T, want *ValidationError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConsolidate(t *testing.T) {
	tests := []struct {
		name  string
		input []Entry
		want  []Entry
	}{
		{
			name:  "empty",
			input: nil,
			want:  []Entry{},
		},
		{
			name: "duplicates summed",
			input: []Entry{
				{Type: TypePower, CardID: "P1", Quantity: 1},
				{Type: TypePower, CardID: "P1", Quantity: 1},
				{Type: TypeCharacter, CardID: "C1", Quantity: 1},
			},
			want: []Entry{
				{Type: TypePower, CardID: "P1", Quantity: 2},
				{Type: TypeCharacter, CardID: "C1", Quantity: 1},
			},
		},
		{
			name: "same id different type kept apart",
			input: []Entry{
				{Type: TypePower, CardID: "7", Quantity: 1},
				{Type: TypeTraining, CardID: "7", Quantity: 1},
			},
			want: []Entry{
				{Type: TypePower, CardID: "7", Quantity: 1},
				{Type: TypeTraining, CardID: "7", Quantity: 1},
			},
		},
		{
			name: "last exclude flag wins",
			input: []Entry{
				{Type: TypeSpecial, CardID: "S1", Quantity: 2, ExcludeFromDraw: true},
				{Type: TypeSpecial, CardID: "S1", Quantity: 1, ExcludeFromDraw: false},
			},
			want: []Entry{
				{Type: TypeSpecial, CardID: "S1", Quantity: 3, ExcludeFromDraw: false},
			},
		},
		{
			name: "first seen order preserved",
			input: []Entry{
				{Type: TypeEvent, CardID: "E1", Quantity: 1},
				{Type: TypeAspect, CardID: "A1", Quantity: 1},
				{Type: TypeEvent, CardID: "E1", Quantity: 1},
			},
			want: []Entry{
				{Type: TypeEvent, CardID: "E1", Quantity: 2},
				{Type: TypeAspect, CardID: "A1", Quantity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Consolidate(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Consolidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	input := []Entry{
		{Type: TypePower, CardID: "P1", Quantity: 1},
		{Type: TypePower, CardID: "P1", Quantity: 1},
		{Type: TypeMission, CardID: "M1", Quantity: 1},
	}

	once := Consolidate(input)
	twice := Consolidate(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Consolidate not idempotent: %v != %v", once, twice)
	}
}

func TestCounts(t *testing.T) {
	entries := []Entry{
		{Type: TypeCharacter, CardID: "C1", Quantity: 3},
		{Type: TypeMission, CardID: "M1", Quantity: 7},
		{Type: TypeLocation, CardID: "L1", Quantity: 1},
		{Type: TypePower, CardID: "P1", Quantity: 4},
		{Type: TypeSpecial, CardID: "S1", Quantity: 5},
	}

	if got := TotalCount(entries); got != 20 {
		t.Errorf("TotalCount() = %d, want 20", got)
	}
	if got := DrawableCount(entries); got != 9 {
		t.Errorf("DrawableCount() = %d, want 9", got)
	}
	if got := CountByTypes(entries, TypePower, TypeSpecial); got != 9 {
		t.Errorf("CountByTypes(power, special) = %d, want 9", got)
	}
	if got := CountByTypes(entries); got != 0 {
		t.Errorf("CountByTypes() = %d, want 0", got)
	}
}
