package fighter

import (
	"strings"
	"testing"

	"github.com/automoto/duelgrounds/config"
)

func TestAnimationProfile_CycleTicks(t *testing.T) {
	tests := []struct {
		name    string
		profile AnimationProfile
		tps     int
		want    int
	}{
		{"one frame at 1 fps", AnimationProfile{FPS: 1, FrameCount: 1}, 60, 60},
		{"walk", AnimationProfile{FPS: 10, FrameCount: 10}, 60, 60},
		{"attack", AnimationProfile{FPS: 10, FrameCount: 5}, 60, 30},
		{"jump rounds down", AnimationProfile{FPS: 14, FrameCount: 11}, 60, 47},
		{"never below one tick", AnimationProfile{FPS: 120, FrameCount: 1}, 60, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.CycleTicks(tt.tps); got != tt.want {
				t.Errorf("CycleTicks(%d) = %d, want %d", tt.tps, got, tt.want)
			}
		})
	}
}

func TestAnimationProfile_Validate(t *testing.T) {
	if err := (AnimationProfile{FPS: 10, FrameCount: 5}).Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}
	if err := (AnimationProfile{FPS: 0, FrameCount: 5}).Validate(); err == nil {
		t.Error("expected error for zero fps")
	}
	if err := (AnimationProfile{FPS: 10, FrameCount: 0}).Validate(); err == nil {
		t.Error("expected error for zero frame count")
	}
}

func TestProfileSet_ValidateNamesMissingState(t *testing.T) {
	ps := testProfiles()
	delete(ps, config.StateDead)

	err := ps.Validate(playerStates)
	if err == nil {
		t.Fatal("expected error for missing state")
	}
	if !strings.Contains(err.Error(), config.StateDead.String()) {
		t.Errorf("error %q does not name the missing state", err)
	}
}
