package suggest

// constellations holds the 88 IAU constellations keyed by abbreviation.
var constellations = []Member{
	{Key: "And", Label: "Andromeda"},
	{Key: "Ant", Label: "Antlia"},
	{Key: "Aps", Label: "Apus"},
	{Key: "Aqr", Label: "Aquarius"},
	{Key: "Aql", Label: "Aquila"},
	{Key: "Ara", Label: "Ara"},
	{Key: "Ari", Label: "Aries"},
	{Key: "Aur", Label: "Auriga"},
	{Key: "Boo", Label: "Boötes"},
	{Key: "Cae", Label: "Caelum"},
	{Key: "Cam", Label: "Camelopardalis"},
	{Key: "Cnc", Label: "Cancer"},
	{Key: "CVn", Label: "Canes Venatici"},
	{Key: "CMa", Label: "Canis Major"},
	{Key: "CMi", Label: "Canis Minor"},
	{Key: "Cap", Label: "Capricornus"},
	{Key: "Car", Label: "Carina"},
	{Key: "Cas", Label: "Cassiopeia"},
	{Key: "Cen", Label: "Centaurus"},
	{Key: "Cep", Label: "Cepheus"},
	{Key: "Cet", Label: "Cetus"},
	{Key: "Cha", Label: "Chamaeleon"},
	{Key: "Cir", Label: "Circinus"},
	{Key: "Col", Label: "Columba"},
	{Key: "Com", Label: "Coma Berenices"},
	{Key: "CrA", Label: "Corona Australis"},
	{Key: "CrB", Label: "Corona Borealis"},
	{Key: "Crv", Label: "Corvus"},
	{Key: "Crt", Label: "Crater"},
	{Key: "Cru", Label: "Crux"},
	{Key: "Cyg", Label: "Cygnus"},
	{Key: "Del", Label: "Delphinus"},
	{Key: "Dor", Label: "Dorado"},
	{Key: "Dra", Label: "Draco"},
	{Key: "Equ", Label: "Equuleus"},
	{Key: "Eri", Label: "Eridanus"},
	{Key: "For", Label: "Fornax"},
	{Key: "Gem", Label: "Gemini"},
	{Key: "Gru", Label: "Grus"},
	{Key: "Her", Label: "Hercules"},
	{Key: "Hor", Label: "Horologium"},
	{Key: "Hya", Label: "Hydra"},
	{Key: "Hyi", Label: "Hydrus"},
	{Key: "Ind", Label: "Indus"},
	{Key: "Lac", Label: "Lacerta"},
	{Key: "Leo", Label: "Leo"},
	{Key: "LMi", Label: "Leo Minor"},
	{Key: "Lep", Label: "Lepus"},
	{Key: "Lib", Label: "Libra"},
	{Key: "Lup", Label: "Lupus"},
	{Key: "Lyn", Label: "Lynx"},
	{Key: "Lyr", Label: "Lyra"},
	{Key: "Men", Label: "Mensa"},
	{Key: "Mic", Label: "Microscopium"},
	{Key: "Mon", Label: "Monoceros"},
	{Key: "Mus", Label: "Musca"},
	{Key: "Nor", Label: "Norma"},
	{Key: "Oct", Label: "Octans"},
	{Key: "Oph", Label: "Ophiuchus"},
	{Key: "Ori", Label: "Orion"},
	{Key: "Pav", Label: "Pavo"},
	{Key: "Peg", Label: "Pegasus"},
	{Key: "Per", Label: "Perseus"},
	{Key: "Phe", Label: "Phoenix"},
	{Key: "Pic", Label: "Pictor"},
	{Key: "Psc", Label: "Pisces"},
	{Key: "PsA", Label: "Piscis Austrinus"},
	{Key: "Pup", Label: "Puppis"},
	{Key: "Pyx", Label: "Pyxis"},
	{Key: "Ret", Label: "Reticulum"},
	{Key: "Sge", Label: "Sagitta"},
	{Key: "Sgr", Label: "Sagittarius"},
	{Key: "Sco", Label: "Scorpius"},
	{Key: "Scl", Label: "Sculptor"},
	{Key: "Sct", Label: "Scutum"},
	{Key: "Ser", Label: "Serpens"},
	{Key: "Sex", Label: "Sextans"},
	{Key: "Tau", Label: "Taurus"},
	{Key: "Tel", Label: "Telescopium"},
	{Key: "Tri", Label: "Triangulum"},
	{Key: "TrA", Label: "Triangulum Australe"},
	{Key: "Tuc", Label: "Tucana"},
	{Key: "UMa", Label: "Ursa Major"},
	{Key: "UMi", Label: "Ursa Minor"},
	{Key: "Vel", Label: "Vela"},
	{Key: "Vir", Label: "Virgo"},
	{Key: "Vol", Label: "Volans"},
	{Key: "Vul", Label: "Vulpecula"},
}

// withAbbreviations exposes each constellation abbreviation as an alias.
func withAbbreviations(ms []Member) []Member {
	out := make([]Member, len(ms))
	for i, m := range ms {
		m.Aliases = append([]string{m.Key}, m.Aliases...)
		out[i] = m
	}
	return out
}
