package triage

import "testing"

func TestScreen(t *testing.T) {
	s := NewScreener()

	tests := []struct {
		name  string
		query string
		want  Level
	}{
		{"plain food query", "brie cheese", LevelNormal},
		{"medication name", "paracetamol", LevelNormal},
		{"empty query", "   ", LevelNormal},
		{"bleeding", "I am bleeding heavily", LevelEmergency},
		{"heavy bleeding", "heavy bleeding since this morning", LevelEmergency},
		{"severe pain", "severe pain in my abdomen", LevelEmergency},
		{"overdose", "took an overdose of ibuprofen", LevelEmergency},
		{"poisoning", "think I have food poisoning?", LevelEmergency},
		{"no movement", "baby stopped moving", LevelEmergency},
		{"water broke", "my water broke", LevelEmergency},
		{"mild mention is normal", "is mild cramping normal", LevelNormal},
		{"case insensitive", "SEVERE HEADACHE and blurry vision", LevelEmergency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Screen(tt.query)
			if got.Level != tt.want {
				t.Errorf("Screen(%q) = %v, want %v", tt.query, got.Level, tt.want)
			}
			if tt.want == LevelEmergency && got.Matched == "" {
				t.Errorf("Screen(%q) emergency without matched phrase", tt.query)
			}
		})
	}
}
