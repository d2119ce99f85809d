package location

import (
	"strings"

	"ainadeul/pkg/domain"
)

// Region is a Daejeon district with its representative coordinate.
type Region struct {
	Name       string            `json:"name"`
	Coordinate domain.Coordinate `json:"coordinate"`
}

// Landmark is a quick-pick location for manual entry.
type Landmark struct {
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	Coordinate domain.Coordinate `json:"coordinate"`
}

// DefaultCenter is Daejeon City Hall, used when an address matches no district.
var DefaultCenter = domain.Coordinate{Lat: 36.3504, Lng: 127.3845}

var Regions = []Region{
	{Name: "유성구", Coordinate: domain.Coordinate{Lat: 36.3621, Lng: 127.3563}},
	{Name: "서구", Coordinate: domain.Coordinate{Lat: 36.3546, Lng: 127.3835}},
	{Name: "중구", Coordinate: domain.Coordinate{Lat: 36.3253, Lng: 127.4217}},
	{Name: "동구", Coordinate: domain.Coordinate{Lat: 36.3370, Lng: 127.4548}},
	{Name: "대덕구", Coordinate: domain.Coordinate{Lat: 36.4466, Lng: 127.4188}},
}

var Landmarks = []Landmark{
	{Name: "대전역", Address: "대전 동구 중앙로 215", Coordinate: domain.Coordinate{Lat: 36.3320, Lng: 127.4349}},
	{Name: "유성온천역", Address: "대전 유성구 온천로 104", Coordinate: domain.Coordinate{Lat: 36.3550, Lng: 127.3380}},
	{Name: "대전시청", Address: "대전 서구 둔산로 100", Coordinate: domain.Coordinate{Lat: 36.3504, Lng: 127.3845}},
	{Name: "충남대학교", Address: "대전 유성구 대학로 99", Coordinate: domain.Coordinate{Lat: 36.3699, Lng: 127.3438}},
	{Name: "KAIST", Address: "대전 유성구 대학로 291", Coordinate: domain.Coordinate{Lat: 36.3721, Lng: 127.3604}},
}

// Geocode returns the coordinate of the first district named in address, in
// Regions order, or DefaultCenter when none matches.
func Geocode(address string) domain.Coordinate {
	for _, r := range Regions {
		if strings.Contains(address, r.Name) {
			return r.Coordinate
		}
	}
	return DefaultCenter
}
