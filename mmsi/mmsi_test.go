package mmsi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewatch/aivdm/mmsi"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		m    uint32
		want mmsi.Class
	}{
		{"ship", 366999371, mmsi.ClassShip},
		{"coast station low", 2320456, mmsi.ClassCoastStation},
		{"coast station zero-prefixed", 4310112, mmsi.ClassCoastStation},
		{"sar aircraft", 111232012, mmsi.ClassSAR},
		{"craft associated", 970232012, mmsi.ClassCraftAssociated},
		{"auxiliary craft", 982320456, mmsi.ClassAuxiliaryCraft},
		{"aid to navigation", 992320456, mmsi.ClassAidToNavigation},
		{"out of range", 4000000000, mmsi.ClassUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mmsi.Classify(tc.m))
		})
	}
}

func TestIsAuxiliaryCraft(t *testing.T) {
	assert.True(t, mmsi.IsAuxiliaryCraft(982320456))
	assert.False(t, mmsi.IsAuxiliaryCraft(366999371))
	assert.False(t, mmsi.IsAuxiliaryCraft(992320456))
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "ship", mmsi.ClassShip.String())
	assert.Equal(t, "auxiliary-craft", mmsi.ClassAuxiliaryCraft.String())
	assert.Equal(t, "unknown", mmsi.ClassUnknown.String())
}
