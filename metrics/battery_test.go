package metrics

import "testing"

func TestParsePowerSupply(t *testing.T) {
	tests := []struct {
		name        string
		capacity    string
		status      string
		want        *BatteryState
	}{
		{
			name:     "charging",
			capacity: "85\n",
			status:   "Charging\n",
			want:     &BatteryState{Percent: 85, Plugged: true},
		},
		{
			name:     "discharging",
			capacity: "42\n",
			status:   "Discharging\n",
			want:     &BatteryState{Percent: 42, Plugged: false},
		},
		{
			name:     "full counts as plugged",
			capacity: "100\n",
			status:   "Full\n",
			want:     &BatteryState{Percent: 100, Plugged: true},
		},
		{
			name:     "unreadable capacity",
			capacity: "garbage",
			status:   "Charging",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePowerSupply(tt.capacity, tt.status)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if got != nil && (got.Percent != tt.want.Percent || got.Plugged != tt.want.Plugged) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePMSet(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   *BatteryState
	}{
		{
			name: "on battery",
			output: "Now drawing from 'Battery Power'\n" +
				" -InternalBattery-0 (id=12345)\t73%; discharging; 4:52 remaining present: true\n",
			want: &BatteryState{Percent: 73, Plugged: false},
		},
		{
			name: "on ac charging",
			output: "Now drawing from 'AC Power'\n" +
				" -InternalBattery-0 (id=12345)\t95%; charging; 0:20 remaining present: true\n",
			want: &BatteryState{Percent: 95, Plugged: true},
		},
		{
			name:   "desktop without battery",
			output: "Now drawing from 'AC Power'\n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePMSet(tt.output)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if got != nil && (got.Percent != tt.want.Percent || got.Plugged != tt.want.Plugged) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
