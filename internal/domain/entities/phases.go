package entities

// PhaseCode identifies a delivery phase of the methodology catalog.
type PhaseCode string

const (
	PhaseLevantamento     PhaseCode = "LV"
	PhasePrograma         PhaseCode = "PN"
	PhaseEstudoPreliminar PhaseCode = "EP"
	PhaseAnteprojeto      PhaseCode = "AP"
	PhaseProjetoLegal     PhaseCode = "PL"
	PhaseProjetoExecutivo PhaseCode = "PE"
)

type Phase struct {
	Code PhaseCode
	Name string
}

// PhaseCatalog is the fixed ordered phase list (NBR 13532 stages).
// Schedules and phase compositions always cover it entirely, in this order.
var PhaseCatalog = []Phase{
	{Code: PhaseLevantamento, Name: "Levantamento de dados"},
	{Code: PhasePrograma, Name: "Programa de necessidades"},
	{Code: PhaseEstudoPreliminar, Name: "Estudo preliminar"},
	{Code: PhaseAnteprojeto, Name: "Anteprojeto"},
	{Code: PhaseProjetoLegal, Name: "Projeto legal"},
	{Code: PhaseProjetoExecutivo, Name: "Projeto executivo"},
}

func LookupPhase(code PhaseCode) (Phase, bool) {
	for _, p := range PhaseCatalog {
		if p.Code == code {
			return p, true
		}
	}
	return Phase{}, false
}
