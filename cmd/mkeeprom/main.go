//go:build !tinygo

// mkeeprom assembles a factory EEPROM image for the volume meter.
//
//	mkeeprom -out mvm.eeprom -active 0 \
//	    -profile 0:120,80,500 -profile 1:60,40,100
//
// Each -profile is slot:minHeightCm,diameterCm,targetCapacityL.
// Unspecified slots stay zeroed (unset).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mvm/tank"
)

type slotSpec struct {
	index   int
	profile tank.Profile
}

type profileFlags []slotSpec

func (p *profileFlags) String() string {
	parts := make([]string, 0, len(*p))
	for _, s := range *p {
		parts = append(parts, fmt.Sprintf("%d:%g,%g,%g",
			s.index, s.profile.MinHeight, s.profile.Diameter, s.profile.TargetCapacity))
	}
	return strings.Join(parts, " ")
}

func (p *profileFlags) Set(v string) error {
	idxStr, rest, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("profile %q: want slot:min,diameter,capacity", v)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil || idx < 0 || idx >= tank.ProfileCount {
		return fmt.Errorf("profile %q: slot must be 0..%d", v, tank.ProfileCount-1)
	}
	fields := strings.Split(rest, ",")
	if len(fields) != 3 {
		return fmt.Errorf("profile %q: want three comma-separated values", v)
	}
	var vals [3]float32
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return fmt.Errorf("profile %q: bad value %q", v, f)
		}
		if x < 0 {
			return fmt.Errorf("profile %q: negative value %q", v, f)
		}
		vals[i] = float32(x)
	}
	*p = append(*p, slotSpec{
		index: idx,
		profile: tank.Profile{
			MinHeight:      vals[0],
			Diameter:       vals[1],
			TargetCapacity: vals[2],
		},
	})
	return nil
}

func main() {
	var outPath string
	var active int
	var profiles profileFlags
	flag.StringVar(&outPath, "out", "mvm.eeprom", "Output image path.")
	flag.IntVar(&active, "active", 0, "Active profile slot.")
	flag.Var(&profiles, "profile", "Profile slot spec (repeatable): slot:min,diameter,capacity.")
	flag.Parse()

	if active < 0 || active >= tank.ProfileCount {
		fmt.Fprintf(os.Stderr, "mkeeprom: active slot must be 0..%d\n", tank.ProfileCount-1)
		os.Exit(2)
	}

	img := make([]byte, tank.StorageBytes)
	for _, s := range profiles {
		tank.EncodeProfile(img[tank.ProfileOffset(s.index):], s.profile)
	}
	tank.EncodeIndex(img[tank.IndexOffset:], active)

	if err := os.WriteFile(outPath, img, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mkeeprom: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes, %d profile(s), active slot %d)\n",
		outPath, len(img), len(profiles), active)
}
