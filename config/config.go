package config

import "github.com/spf13/viper"

var (
	KeyToursDirectory = "tours.directory"
	KeyBuildDirectory = "build.directory"
	KeyServeAddress   = "serve.address"
)

func HasToursDirectory() bool {
	return viper.IsSet(KeyToursDirectory)
}

func ToursDirectory() string {
	return viper.GetString(KeyToursDirectory)
}

func BuildDirectory() string {
	if viper.IsSet(KeyBuildDirectory) {
		return viper.GetString(KeyBuildDirectory)
	}

	return "public/tours"
}

func ServeAddress() string {
	if viper.IsSet(KeyServeAddress) {
		return viper.GetString(KeyServeAddress)
	}

	return ":8000"
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".log"}
}

func IndexFileName() string {
	return "tours.json"
}

func PolylineCacheFileName() string {
	return "polyline.json"
}

func DescriptionFileName() string {
	return "description.md"
}

func TourYAMLFileName() string {
	return "tour.yaml"
}

func PhotoFileNames() []string {
	return []string{"1.jpg", "2.jpg", "3.jpg"}
}

func DefaultThumbWidth() int {
	return 600
}

func DefaultThumbJPEGQuality() int {
	return 95
}

func DefaultChartWidth() int {
	return 900
}

func DefaultChartHeight() int {
	return 400
}
