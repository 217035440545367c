package suggest

import (
	"strconv"

	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
)

var telescopeTypes = keys(
	"REFRACTOR_ACHROMATIC",
	"REFRACTOR_SEMI_APOCHROMATIC",
	"REFRACTOR_APOCHROMATIC",
	"REFRACTOR_NON_ACHROMATIC_GALILEAN",
	"REFRACTOR_PETZVAL",
	"REFLECTOR_DALL_KIRKHAM",
	"REFLECTOR_NASMYTH",
	"REFLECTOR_NEWTONIAN",
	"REFLECTOR_RITCHEY_CHRETIEN",
	"REFLECTOR_SCHMIDT",
	"REFLECTOR_HERSCHELIAN",
	"CATADIOPTRIC_SCHMIDT_CASSEGRAIN",
	"CATADIOPTRIC_MAKSUTOV_CASSEGRAIN",
	"CATADIOPTRIC_MAKSUTOV_NEWTONIAN",
	"CATADIOPTRIC_RICCARDI_HONDERS",
	"CATADIOPTRIC_ROWE_ACKERMANN_SCHMIDT",
	"CATADIOPTRIC_HARMER_WYNNE",
	"CATADIOPTRIC_SCHMIDT_NEWTONIAN",
	"CAMERA_LENS",
	"BINOCULARS",
	"OTHER",
)

var cameraTypes = keys(
	"DEDICATED_DEEP_SKY",
	"DSLR_MIRRORLESS",
	"GUIDER_PLANETARY",
	"VIDEO",
	"FILM",
	"OTHER",
)

var months = keys("JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC")

// Remote hosting facilities carry their own display names.
var remoteSources = []Member{
	{Key: "AC", Label: "AstroCamp"},
	{Key: "AHK", Label: "Astro Hostel Krasnodar"},
	{Key: "AOWA", Label: "Astro Observatories Western Australia"},
	{Key: "CS", Label: "ChileScope"},
	{Key: "DMA", Label: "Dark Matters Astrophotography"},
	{Key: "DSNM", Label: "Dark Sky New Mexico"},
	{Key: "DSP", Label: "Dark Sky Portugal"},
	{Key: "DSW", Label: "Deep Sky West"},
	{Key: "DSC", Label: "DeepSkyChile"},
	{Key: "GMO", Label: "Grand Mesa Observatory"},
	{Key: "HMO", Label: "Heaven's Mirror Observatory"},
	{Key: "IC", Label: "IC Astronomy Observatories"},
	{Key: "ITU", Label: "Image The Universe"},
	{Key: "ITELESCO", Label: "iTelescope"},
	{Key: "LGO", Label: "Lijiang Gemini Observatory"},
	{Key: "MARIO", Label: "Marathon Remote Imaging Observatory"},
	{Key: "OES", Label: "Observatorio El Sauce"},
	{Key: "PSA", Label: "PixelSkies"},
	{Key: "RLD", Label: "Riverland Dingo Observatory"},
	{Key: "SKIESAWAY", Label: "SkiesAway Remote Observatories"},
	{Key: "SPVO", Label: "Southern Plains Remote Observatory"},
	{Key: "SRO", Label: "Sierra Remote Observatories"},
	{Key: "STARFRONT", Label: "Starfront Observatories"},
	{Key: "TELI", Label: "Telescope Live"},
	{Key: "UDRO", Label: "Utah Desert Remote Observatory"},
	{Key: "OTHER", Label: "Other"},
}

var subjectTypes = keys(
	"DEEP_SKY",
	"SOLAR_SYSTEM",
	"WIDE_FIELD",
	"STAR_TRAILS",
	"NORTHERN_LIGHTS",
	"NOCTILUCENT_CLOUDS",
	"LANDSCAPE",
	"ARTIFICIAL_SATELLITE",
	"GEAR",
	"OTHER",
)

var colorOrMono = []Member{
	{Key: "C", Label: "Color", Aliases: []string{"Colour", "OSC"}},
	{Key: "M", Label: "Monochrome", Aliases: []string{"Mono"}},
}

var awards = keys(
	"IOTD",
	"TOP_PICK",
	"TOP_PICK_NOMINATION",
)

var dataSources = keys(
	"BACKYARD",
	"TRAVELLER",
	"OWN_REMOTE",
	"AMATEUR_HOSTING",
	"PUBLIC_AMATEUR_DATA",
	"PRO_DATA",
	"MIX",
	"OTHER",
	"UNKNOWN",
)

var minimumData = keys(
	"TELESCOPES",
	"CAMERAS",
	"ACQUISITION_DETAILS",
	"ASTROMETRY",
)

var licenses = keys(
	"ALL_RIGHTS_RESERVED",
	"ATTRIBUTION_NON_COMMERCIAL_SHARE_ALIKE",
	"ATTRIBUTION_NON_COMMERCIAL",
	"ATTRIBUTION_NON_COMMERCIAL_NO_DERIVS",
	"ATTRIBUTION",
	"ATTRIBUTION_SHARE_ALIKE",
	"ATTRIBUTION_NO_DERIVS",
)

var filterTypes = keys(
	"H_ALPHA",
	"H_BETA",
	"SII",
	"OIII",
	"NII",
	"UV",
	"IR",
	"MULTIBAND",
	"LP",
	"L",
	"R",
	"G",
	"B",
	"ND",
	"UHC",
	"SKY_GLOW",
	"SOLAR",
	"LUNAR",
	"PLANETARY",
	"COMET",
	"PHOTOMETRIC_U",
	"PHOTOMETRIC_B",
	"PHOTOMETRIC_V",
	"PHOTOMETRIC_R",
	"PHOTOMETRIC_I",
	"OTHER",
)

// bortleScale lists classes 1 to 9, each as a one-point range.
func bortleScale() []Member {
	out := make([]Member, 0, 9)
	for n := 1; n <= 9; n++ {
		s := strconv.Itoa(n)
		out = append(out, Member{
			Key:     s,
			Label:   "Bortle " + s,
			Payload: searchmodel.Range{Min: float64(n), Max: float64(n)},
		})
	}
	return out
}
