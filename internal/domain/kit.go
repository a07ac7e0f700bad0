package domain

import "time"

// KitStatus representa la etapa del kit dentro del pipeline de laboratorio.
// Los valores forman una progresión estrictamente ordenada.
type KitStatus string

const (
	KitStatusPending    KitStatus = "pending"
	KitStatusLaboratory KitStatus = "laboratory"
	KitStatusProcessing KitStatus = "processing"
	KitStatusCompleted  KitStatus = "completed"
)

var kitStatusOrder = map[KitStatus]int{
	KitStatusPending:    0,
	KitStatusLaboratory: 1,
	KitStatusProcessing: 2,
	KitStatusCompleted:  3,
}

// ParseKitStatus normaliza un estado crudo; un valor desconocido o vacio se
// trata como pending.
func ParseKitStatus(raw string) KitStatus {
	s := KitStatus(raw)
	if _, ok := kitStatusOrder[s]; !ok {
		return KitStatusPending
	}
	return s
}

// Reached indica si el estado ya alcanzo (o supero) la etapa dada.
func (s KitStatus) Reached(stage KitStatus) bool {
	return kitStatusOrder[s] >= kitStatusOrder[stage]
}

// Next devuelve la etapa siguiente y false si el estado ya es terminal.
func (s KitStatus) Next() (KitStatus, bool) {
	switch s {
	case KitStatusPending:
		return KitStatusLaboratory, true
	case KitStatusLaboratory:
		return KitStatusProcessing, true
	case KitStatusProcessing:
		return KitStatusCompleted, true
	default:
		return s, false
	}
}

type Kit struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	Barcode      string     `json:"barcode,omitempty"`
	Status       KitStatus  `json:"status"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	LaboratoryAt *time.Time `json:"laboratory_at,omitempty"`
	ProcessingAt *time.Time `json:"processing_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
