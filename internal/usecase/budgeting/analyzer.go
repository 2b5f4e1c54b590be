package budgeting

import (
	"math"
	"strings"
	"unicode"

	"orcamento_arq/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// lowConfidenceGate multiplies the confidence when a signal the calculator
// cannot do without (area, typology) had to be defaulted.
const lowConfidenceGate = 0.1

// expectedSignals are the briefing signals counted for confidence.
var expectedSignals = []string{
	"typology",
	"constructed_area",
	"land_area",
	"standard",
	"complexity",
	"disciplines",
	"location",
	"special_characteristics",
	"description",
}

const explicitTypologyWeight = 10

var typologyKeywords = map[entities.Typology][]string{
	entities.TypologyResidencial: {
		"casa", "residencia", "residencial", "apartamento", "sobrado", "moradia", "chacara", "edicula", "condominio",
	},
	entities.TypologyComercial: {
		"loja", "comercio", "comercial", "restaurante", "cafe", "cafeteria", "varejo", "showroom", "bar", "padaria",
	},
	entities.TypologyCorporativo: {
		"escritorio", "sede", "corporativo", "coworking", "empresa", "agencia", "consultorio",
	},
	entities.TypologyInstitucional: {
		"escola", "hospital", "clinica", "igreja", "museu", "biblioteca", "institucional", "universidade", "creche", "teatro",
	},
	entities.TypologyIndustrial: {
		"galpao", "fabrica", "industria", "industrial", "deposito", "logistica", "armazem", "oficina",
	},
}

var typologyAliases = map[string]entities.Typology{
	"residential":   entities.TypologyResidencial,
	"residencia":    entities.TypologyResidencial,
	"commercial":    entities.TypologyComercial,
	"corporate":     entities.TypologyCorporativo,
	"office":        entities.TypologyCorporativo,
	"institutional": entities.TypologyInstitucional,
	"industry":      entities.TypologyIndustrial,
}

var standardAliases = map[string]entities.Standard{
	"low":         entities.StandardSimples,
	"basic":       entities.StandardSimples,
	"economico":   entities.StandardSimples,
	"popular":     entities.StandardSimples,
	"medium":      entities.StandardMedio,
	"normal":      entities.StandardMedio,
	"high":        entities.StandardAlto,
	"alto padrao": entities.StandardAlto,
	"luxury":      entities.StandardLuxo,
	"premium":     entities.StandardLuxo,
}

var complexityAliases = map[string]entities.Complexity{
	"low":        entities.ComplexityBaixa,
	"medium":     entities.ComplexityMedia,
	"high":       entities.ComplexityAlta,
	"very high":  entities.ComplexityMuitoAlta,
	"very_high":  entities.ComplexityMuitoAlta,
	"muito alta": entities.ComplexityMuitoAlta,
}

var disciplineAliases = map[string]entities.Discipline{
	"estrutura":             entities.DisciplineEstrutural,
	"structural":            entities.DisciplineEstrutural,
	"hidraulica":            entities.DisciplineHidrossanitario,
	"hidraulico":            entities.DisciplineHidrossanitario,
	"plumbing":              entities.DisciplineHidrossanitario,
	"eletrica":              entities.DisciplineEletrico,
	"electrical":            entities.DisciplineEletrico,
	"ar condicionado":       entities.DisciplineClimatizacao,
	"hvac":                  entities.DisciplineClimatizacao,
	"ppci":                  entities.DisciplineIncendio,
	"fire":                  entities.DisciplineIncendio,
	"iluminacao":            entities.DisciplineLuminotecnico,
	"lighting":              entities.DisciplineLuminotecnico,
	"interiors":             entities.DisciplineInteriores,
	"interior":              entities.DisciplineInteriores,
	"landscape":             entities.DisciplinePaisagismo,
	"landscaping":           entities.DisciplinePaisagismo,
	"acoustics":             entities.DisciplineAcustica,
	"architecture":          entities.DisciplineArquitetura,
	"projeto arquitetonico": entities.DisciplineArquitetura,
}

// Analyze extracts a FeatureSet from a briefing. It never fails: unanswered
// questions are replaced by documented defaults and lower the confidence.
func Analyze(b entities.Briefing) entities.FeatureSet {
	a := b.Answers
	present := make(map[string]bool, len(expectedSignals))
	fs := entities.FeatureSet{
		TenantID:   b.TenantID,
		BriefingID: b.ID,
	}

	typology, typologySignal := inferTypology(a)
	fs.Typology = typology
	present["typology"] = typologySignal

	if a.Areas.ConstructedArea != nil && *a.Areas.ConstructedArea > 0 && !math.IsInf(*a.Areas.ConstructedArea, 0) {
		fs.ConstructedArea = *a.Areas.ConstructedArea
		present["constructed_area"] = true
	} else {
		fs.ConstructedArea = typologyDefaultArea[typology]
	}

	if a.Site.LandArea != nil && *a.Site.LandArea > 0 && !math.IsInf(*a.Site.LandArea, 0) {
		fs.LandArea = *a.Site.LandArea
		present["land_area"] = true
	}

	fs.Standard, present["standard"] = inferStandard(a)

	requested := parseDisciplines(a.Scope.RequestedDisciplines)
	present["disciplines"] = len(requested) > 0
	fs.RequestedDisciplines = requested
	fs.Disciplines = unionDisciplines(typologyDefaultDisciplines[typology], requested)

	fs.SpecialCharacteristics = specialCharacteristics(a)
	present["special_characteristics"] = a.Special.Answered() || a.Site.Slope != nil

	if a.Site.City != nil && strings.TrimSpace(*a.Site.City) != "" {
		fs.Location.City = strings.TrimSpace(*a.Site.City)
		present["location"] = true
	}
	if a.Site.State != nil && strings.TrimSpace(*a.Site.State) != "" {
		fs.Location.State = strings.ToUpper(strings.TrimSpace(*a.Site.State))
		present["location"] = true
	}

	present["description"] = (a.Project.Description != nil && strings.TrimSpace(*a.Project.Description) != "") ||
		len(a.Project.Uses) > 0

	if explicit, ok := parseComplexity(a.Scope.Complexity); ok {
		fs.Complexity = explicit
		present["complexity"] = true
	} else {
		fs.Complexity = InferComplexity(fs.ConstructedArea, len(fs.Disciplines), len(fs.SpecialCharacteristics), DefaultComplexityWeights)
	}

	if a.Timeline.DesiredDeadlineDays != nil && *a.Timeline.DesiredDeadlineDays > 0 {
		fs.DesiredDeadlineDays = *a.Timeline.DesiredDeadlineDays
	}

	found := 0
	for _, signal := range expectedSignals {
		if present[signal] {
			found++
			continue
		}
		fs.Defaulted = append(fs.Defaulted, signal)
	}
	confidence := float64(found) / float64(len(expectedSignals))
	if !present["typology"] || !present["constructed_area"] {
		confidence *= lowConfidenceGate
	}
	fs.Confidence = roundConfidence(confidence)
	return fs
}

// inferTypology scores every typology from the explicit answer and keyword
// matches; the highest score wins, ties follow TypologyPrecedence. The second
// return reports whether any signal was found at all.
func inferTypology(a entities.BriefingAnswers) (entities.Typology, bool) {
	scores := make(map[entities.Typology]int, len(entities.TypologyPrecedence))

	if a.Project.Typology != nil {
		if t, ok := parseTypology(*a.Project.Typology); ok {
			scores[t] += explicitTypologyWeight
		}
	}

	var texts []string
	if a.Project.Name != nil {
		texts = append(texts, *a.Project.Name)
	}
	if a.Project.Description != nil {
		texts = append(texts, *a.Project.Description)
	}
	texts = append(texts, a.Project.Uses...)
	texts = append(texts, a.Finish.Keywords...)

	for _, token := range tokenize(strings.Join(texts, " ")) {
		for typology, keywords := range typologyKeywords {
			for _, kw := range keywords {
				if token == kw {
					scores[typology]++
				}
			}
		}
	}

	best := entities.TypologyPrecedence[0]
	bestScore := 0
	for _, t := range entities.TypologyPrecedence {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best, bestScore > 0
}

func inferStandard(a entities.BriefingAnswers) (entities.Standard, bool) {
	if a.Finish.Standard != nil {
		if s, ok := parseStandard(*a.Finish.Standard); ok {
			return s, true
		}
	}

	var texts []string
	if a.Project.Description != nil {
		texts = append(texts, *a.Project.Description)
	}
	texts = append(texts, a.Finish.Keywords...)
	joined := " " + strings.Join(tokenize(strings.Join(texts, " ")), " ") + " "

	switch {
	case strings.Contains(joined, " luxo ") || strings.Contains(joined, " premium "):
		return entities.StandardLuxo, true
	case strings.Contains(joined, " alto padrao "):
		return entities.StandardAlto, true
	case strings.Contains(joined, " economico ") || strings.Contains(joined, " popular "):
		return entities.StandardSimples, true
	}
	return entities.StandardMedio, false
}

// InferComplexity maps area, discipline count and special-characteristic
// count into a complexity tier.
func InferComplexity(area float64, disciplines, specials int, w ComplexityWeights) entities.Complexity {
	areaBucket := 0
	switch {
	case area > 2000:
		areaBucket = 3
	case area > 500:
		areaBucket = 2
	case area > 150:
		areaBucket = 1
	}

	disciplineBucket := 0
	switch {
	case disciplines > 6:
		disciplineBucket = 2
	case disciplines > 4:
		disciplineBucket = 1
	}

	specialBucket := 0
	switch {
	case specials >= 3:
		specialBucket = 2
	case specials >= 1:
		specialBucket = 1
	}

	score := w.Area*areaBucket + w.Disciplines*disciplineBucket + w.Special*specialBucket
	for _, c := range complexityTierCeilings {
		if score <= c.Ceiling {
			return c.Tier
		}
	}
	return entities.ComplexityMuitoAlta
}

func specialCharacteristics(a entities.BriefingAnswers) []entities.SpecialCharacteristic {
	flags := []struct {
		answer *bool
		tag    entities.SpecialCharacteristic
	}{
		{a.Special.Pool, entities.SpecialPiscina},
		{a.Special.Elevator, entities.SpecialElevador},
		{a.Special.Basement, entities.SpecialSubsolo},
		{a.Special.HeritageListed, entities.SpecialTombamento},
		{a.Special.Automation, entities.SpecialAutomacao},
		{a.Special.SustainabilityCertification, entities.SpecialCertificacao},
		{a.Special.AccessibilityCompliance, entities.SpecialAcessibilidade},
	}

	out := make([]entities.SpecialCharacteristic, 0, len(flags)+1)
	for _, f := range flags {
		if f.answer != nil && *f.answer {
			out = append(out, f.tag)
		}
	}
	if a.Site.Slope != nil && *a.Site.Slope == entities.TerrainSteep {
		out = append(out, entities.SpecialTerrenoInclinado)
	}
	return out
}

func parseTypology(raw string) (entities.Typology, bool) {
	key := normalize(raw)
	if t := entities.Typology(key); t.Valid() {
		return t, true
	}
	t, ok := typologyAliases[key]
	return t, ok
}

func parseStandard(raw string) (entities.Standard, bool) {
	key := normalize(raw)
	if s := entities.Standard(key); s.Valid() {
		return s, true
	}
	s, ok := standardAliases[key]
	return s, ok
}

func parseComplexity(raw *string) (entities.Complexity, bool) {
	if raw == nil {
		return "", false
	}
	key := normalize(*raw)
	if c := entities.Complexity(key); c.Valid() {
		return c, true
	}
	c, ok := complexityAliases[key]
	return c, ok
}

func parseDisciplines(raw []string) []entities.Discipline {
	seen := make(map[entities.Discipline]bool, len(raw))
	for _, r := range raw {
		key := normalize(r)
		d := entities.Discipline(key)
		if !d.Valid() {
			alias, ok := disciplineAliases[key]
			if !ok {
				continue
			}
			d = alias
		}
		seen[d] = true
	}

	out := make([]entities.Discipline, 0, len(seen))
	for _, d := range entities.Disciplines {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// unionDisciplines merges both lists into canonical order.
func unionDisciplines(a, b []entities.Discipline) []entities.Discipline {
	seen := make(map[entities.Discipline]bool, len(a)+len(b))
	for _, d := range a {
		seen[d] = true
	}
	for _, d := range b {
		seen[d] = true
	}
	out := make([]entities.Discipline, 0, len(seen))
	for _, d := range entities.Disciplines {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// normalize lowercases, strips accents and collapses whitespace.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

func tokenize(s string) []string {
	return strings.FieldsFunc(normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func roundConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*1000) / 1000
}
