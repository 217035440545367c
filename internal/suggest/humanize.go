package suggest

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labels are the display names of enum members whose title-cased key reads wrong.
var labels = map[string]string{
	"REFRACTOR_ACHROMATIC":                   "Refractor: achromatic",
	"REFRACTOR_SEMI_APOCHROMATIC":            "Refractor: semi-apochromatic",
	"REFRACTOR_APOCHROMATIC":                 "Refractor: apochromatic",
	"REFRACTOR_NON_ACHROMATIC_GALILEAN":      "Refractor: non-achromatic Galilean",
	"REFRACTOR_PETZVAL":                      "Refractor: Petzval",
	"REFLECTOR_DALL_KIRKHAM":                 "Reflector: Dall-Kirkham",
	"REFLECTOR_NASMYTH":                      "Reflector: Nasmyth",
	"REFLECTOR_NEWTONIAN":                    "Reflector: Newtonian",
	"REFLECTOR_RITCHEY_CHRETIEN":             "Reflector: Ritchey-Chretien",
	"REFLECTOR_SCHMIDT":                      "Reflector: Schmidt camera",
	"REFLECTOR_HERSCHELIAN":                  "Reflector: Herschelian",
	"CATADIOPTRIC_SCHMIDT_CASSEGRAIN":        "Catadioptric: Schmidt-Cassegrain",
	"CATADIOPTRIC_MAKSUTOV_CASSEGRAIN":       "Catadioptric: Maksutov-Cassegrain",
	"CATADIOPTRIC_MAKSUTOV_NEWTONIAN":        "Catadioptric: Maksutov-Newtonian",
	"CATADIOPTRIC_RICCARDI_HONDERS":          "Catadioptric: Riccardi-Honders",
	"CATADIOPTRIC_ROWE_ACKERMANN_SCHMIDT":    "Catadioptric: Rowe-Ackermann Schmidt astrograph",
	"CATADIOPTRIC_HARMER_WYNNE":              "Catadioptric: Harmer-Wynne",
	"CATADIOPTRIC_SCHMIDT_NEWTONIAN":         "Catadioptric: Schmidt-Newtonian",
	"CAMERA_LENS":                            "Camera lens",
	"DEDICATED_DEEP_SKY":                     "Dedicated deep-sky camera",
	"DSLR_MIRRORLESS":                        "General purpose DSLR or mirrorless camera",
	"GUIDER_PLANETARY":                       "Guider/Planetary camera",
	"VIDEO":                                  "Video camera",
	"FILM":                                   "Film camera",
	"JAN":                                    "January",
	"FEB":                                    "February",
	"MAR":                                    "March",
	"APR":                                    "April",
	"MAY":                                    "May",
	"JUN":                                    "June",
	"JUL":                                    "July",
	"AUG":                                    "August",
	"SEP":                                    "September",
	"OCT":                                    "October",
	"NOV":                                    "November",
	"DEC":                                    "December",
	"DEEP_SKY":                               "Deep sky",
	"SOLAR_SYSTEM":                           "Solar system",
	"WIDE_FIELD":                             "Extremely wide field",
	"NORTHERN_LIGHTS":                        "Northern lights",
	"ARTIFICIAL_SATELLITE":                   "Artificial satellite",
	"GEAR":                                   "Gear",
	"IOTD":                                   "Image of the day",
	"TOP_PICK":                               "Top pick",
	"TOP_PICK_NOMINATION":                    "Top pick nomination",
	"BACKYARD":                               "Backyard",
	"TRAVELLER":                              "Traveller",
	"OWN_REMOTE":                             "Own remote observatory",
	"AMATEUR_HOSTING":                        "Amateur hosting facility",
	"PUBLIC_AMATEUR_DATA":                    "Public amateur data",
	"PRO_DATA":                               "Professional, scientific grade data",
	"MIX":                                    "Mix of multiple sources",
	"ACQUISITION_DETAILS":                    "Acquisition details",
	"ASTROMETRY":                             "Astrometry",
	"ALL_RIGHTS_RESERVED":                    "None (All rights reserved)",
	"ATTRIBUTION_NON_COMMERCIAL_SHARE_ALIKE": "Attribution-NonCommercial-ShareAlike Creative Commons",
	"ATTRIBUTION_NON_COMMERCIAL":             "Attribution-NonCommercial Creative Commons",
	"ATTRIBUTION_NON_COMMERCIAL_NO_DERIVS":   "Attribution-NonCommercial-NoDerivs Creative Commons",
	"ATTRIBUTION":                            "Attribution Creative Commons",
	"ATTRIBUTION_SHARE_ALIKE":                "Attribution-ShareAlike Creative Commons",
	"ATTRIBUTION_NO_DERIVS":                  "Attribution-NoDerivs Creative Commons",
	"H_ALPHA":                                "H-alpha",
	"H_BETA":                                 "H-beta",
	"SII":                                    "SII",
	"OIII":                                   "OIII",
	"NII":                                    "NII",
	"UV":                                     "UV",
	"IR":                                     "IR",
	"MULTIBAND":                              "Multiband",
	"LP":                                     "Light pollution suppression",
	"L":                                      "Luminance/clear",
	"R":                                      "Red channel",
	"G":                                      "Green channel",
	"B":                                      "Blue channel",
	"ND":                                     "Neutral density",
	"UHC":                                    "UHC",
	"SKY_GLOW":                               "Sky glow",
	"PHOTOMETRIC_U":                          "Photometric Johnson U",
	"PHOTOMETRIC_B":                          "Photometric Johnson B",
	"PHOTOMETRIC_V":                          "Photometric Johnson V",
	"PHOTOMETRIC_R":                          "Photometric Cousins R",
	"PHOTOMETRIC_I":                          "Photometric Cousins I",
}

// DictionaryHumanizer maps enum members to labels, title-casing unknown ones.
type DictionaryHumanizer struct {
	labels map[string]string
	lang   language.Tag
}

// NewHumanizer creates a humanizer. overrides take precedence over built-in labels.
func NewHumanizer(overrides map[string]string) *DictionaryHumanizer {
	merged := maps.Clone(labels)
	maps.Copy(merged, overrides)
	return &DictionaryHumanizer{
		labels: merged,
		lang:   language.English,
	}
}

// Humanize implements Humanizer. "STAR_TRAILS" without a label becomes "Star trails".
func (h *DictionaryHumanizer) Humanize(value string) string {
	if label, ok := h.labels[value]; ok {
		return label
	}
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	if len(words) == 0 {
		return value
	}
	// A Caser keeps state, so each call gets its own.
	words[0] = cases.Title(h.lang).String(words[0])
	for i := 1; i < len(words); i++ {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, " ")
}
