package format

import "testing"

func TestTimeDisplay(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		want   string
	}{
		{"morning on the hour", 9, 0, "9am"},
		{"afternoon with minutes", 13, 5, "1.5pm"},
		{"midnight", 0, 0, "12am"},
		{"noon", 12, 0, "12pm"},
		{"late evening", 23, 45, "11.45pm"},
		{"just after midnight", 0, 30, "12.30am"},
		{"just after noon", 12, 1, "12.1pm"},
		{"last morning hour", 11, 59, "11.59am"},
		{"one am", 1, 0, "1am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeDisplay(tt.hour, tt.minute); got != tt.want {
				t.Errorf("TimeDisplay(%d, %d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
			}
		})
	}
}
