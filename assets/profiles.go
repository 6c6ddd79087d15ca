package assets

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

type profileVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type stateProfile struct {
	FPS        int        `yaml:"fps"`
	Frames     int        `yaml:"frames"`
	Offset     profileVec `yaml:"offset"`
	Velocity   profileVec `yaml:"velocity"`
	Mirrorable bool       `yaml:"mirrorable"`
}

type profileFile struct {
	Name   string                  `yaml:"name"`
	States map[string]stateProfile `yaml:"states"`
}

// LoadFighterProfiles reads assets/profiles/<name>.yaml into a profile
// set. State names must match the StateID vocabulary and every profile
// must be well formed; anything else is an error so a typo in the YAML
// surfaces at startup.
func LoadFighterProfiles(name string) (fighter.ProfileSet, error) {
	raw, err := profileFS.ReadFile("profiles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s profiles: %w", name, err)
	}

	var file profileFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s profiles: %w", name, err)
	}
	if len(file.States) == 0 {
		return nil, fmt.Errorf("%s profiles: no states defined", name)
	}

	set := fighter.ProfileSet{}
	for stateName, p := range file.States {
		id, ok := config.ParseStateID(stateName)
		if !ok {
			return nil, fmt.Errorf("%s profiles: unknown state %q", name, stateName)
		}
		profile := fighter.AnimationProfile{
			FPS:        p.FPS,
			FrameCount: p.Frames,
			OffsetX:    p.Offset.X,
			OffsetY:    p.Offset.Y,
			VelX:       p.Velocity.X,
			VelY:       p.Velocity.Y,
			Mirrorable: p.Mirrorable,
		}
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("%s profiles: state %s: %w", name, stateName, err)
		}
		set[id] = profile
	}

	return set, nil
}

func MustLoadFighterProfiles(name string) fighter.ProfileSet {
	set, err := LoadFighterProfiles(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load fighter profiles: %v", err))
	}
	return set
}
