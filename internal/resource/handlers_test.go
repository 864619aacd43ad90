package resource

import (
	"net/url"
	"testing"
)

func TestParseLocationQuery(t *testing.T) {
	t.Run("building only", func(t *testing.T) {
		buildingID, floor, errMsg := parseLocationQuery(url.Values{"building_id": {"7"}})
		if errMsg != "" {
			t.Fatalf("unexpected error %q", errMsg)
		}
		if buildingID != 7 {
			t.Fatalf("buildingID = %d, want 7", buildingID)
		}
		if floor != nil {
			t.Fatalf("floor = %v, want nil", *floor)
		}
	})

	t.Run("building and floor", func(t *testing.T) {
		buildingID, floor, errMsg := parseLocationQuery(url.Values{
			"building_id":  {"7"},
			"floor_number": {"3"},
		})
		if errMsg != "" {
			t.Fatalf("unexpected error %q", errMsg)
		}
		if buildingID != 7 {
			t.Fatalf("buildingID = %d, want 7", buildingID)
		}
		if floor == nil || *floor != 3 {
			t.Fatalf("floor = %v, want 3", floor)
		}
	})

	t.Run("building required", func(t *testing.T) {
		_, _, errMsg := parseLocationQuery(url.Values{"floor_number": {"3"}})
		if errMsg != "building_id is required" {
			t.Fatalf("errMsg = %q", errMsg)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, _, errMsg := parseLocationQuery(url.Values{"building_id": {"west"}}); errMsg != "invalid building_id" {
			t.Fatalf("errMsg = %q", errMsg)
		}
		if _, _, errMsg := parseLocationQuery(url.Values{
			"building_id":  {"7"},
			"floor_number": {"ground"},
		}); errMsg != "invalid floor_number" {
			t.Fatalf("errMsg = %q", errMsg)
		}
	})
}
