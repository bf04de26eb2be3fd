package geotrack

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func nmeaSentence(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}

	return fmt.Sprintf("$%s*%02X", body, sum)
}

func TestParseNMEAGGA(t *testing.T) {
	lines := strings.Join([]string{
		nmeaSentence("GPGGA,120000.00,4603.0000,N,00712.0000,E,1,08,1.0,1000.0,M,47.0,M,,"),
		nmeaSentence("GPRMC,120001.00,A,4603.0000,N,00712.0000,E,1.0,90.0,010124,,,A"),
		nmeaSentence("GPGGA,120002.00,4603.0600,N,00712.0000,E,1,08,1.0,1010.0,M,47.0,M,,"),
		nmeaSentence("GPGGA,120003.00,4603.1200,N,00712.0000,E,0,00,0.0,0.0,M,0.0,M,,"),
	}, "\n")

	track, err := ParseNMEA(strings.NewReader(lines))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two valid GGA fixes; the RMC line and the invalid fix are skipped.
	if len(track) != 2 {
		t.Fatalf("point count: got %d, want 2", len(track))
	}

	if math.Abs(track[0].Lat-46.05) > 1e-6 {
		t.Errorf("latitude: got %v, want 46.05", track[0].Lat)
	}
	if track[0].Elevation != 1000 {
		t.Errorf("elevation: got %v, want 1000", track[0].Elevation)
	}
	if track[1].Elevation != 1010 {
		t.Errorf("elevation: got %v, want 1010", track[1].Elevation)
	}
}

func TestParseNMEAEmpty(t *testing.T) {
	_, err := ParseNMEA(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("got %v, want ErrEmptyTrack", err)
	}
}
