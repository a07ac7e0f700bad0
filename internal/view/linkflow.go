package view

import (
	"context"
	"time"
)

// LinkStep es el paso actual del flujo de vinculacion de kit.
type LinkStep string

const (
	StepScan     LinkStep = "scan"
	StepRegister LinkStep = "register"
	StepSuccess  LinkStep = "success"
)

// Scanner es la capacidad externa de lectura de codigo de barras. Un doble
// de prueba puede inyectarse en lugar del hardware simulado.
type Scanner interface {
	Scan(ctx context.Context) (string, error)
}

// OwnerForm son los datos fisicos del dueño del kit recolectados en el paso
// de registro. No se validan ni persisten en este flujo.
type OwnerForm struct {
	PhotoURL  string
	BirthDate *time.Time
	Gender    string
	HeightCm  int
	WeightKg  int
}

// LinkFlow es la maquina de 3 estados scan, register y success. Solo avanza;
// la unica vuelta atras es abortar el flujo completo.
type LinkFlow struct {
	step    LinkStep
	barcode string
	form    OwnerForm

	onClose    func()
	onComplete func()
}

// NewLinkFlow crea el flujo en el paso scan. onComplete puede ser nil; en ese
// caso la salida del paso final invoca onClose.
func NewLinkFlow(onClose, onComplete func()) *LinkFlow {
	return &LinkFlow{step: StepScan, onClose: onClose, onComplete: onComplete}
}

func (f *LinkFlow) Step() LinkStep  { return f.step }
func (f *LinkFlow) Barcode() string { return f.barcode }
func (f *LinkFlow) Form() OwnerForm { return f.form }

// ScanCode lee un codigo con la capacidad inyectada y avanza a register.
// Un error del scanner deja el flujo en scan sin efectos.
func (f *LinkFlow) ScanCode(ctx context.Context, scanner Scanner) error {
	if f.step != StepScan {
		return nil
	}
	code, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	f.barcode = code
	f.step = StepRegister
	return nil
}

// EnterManually toma la ruta de entrada manual y avanza a register.
func (f *LinkFlow) EnterManually(code string) {
	if f.step != StepScan {
		return
	}
	f.barcode = code
	f.step = StepRegister
}

// SubmitRegister guarda el formulario del dueño y avanza a success.
func (f *LinkFlow) SubmitRegister(form OwnerForm) {
	if f.step != StepRegister {
		return
	}
	f.form = form
	f.step = StepSuccess
}

// Finish sale del paso terminal invocando el callback de completado, o el de
// cierre si no hay ninguno. Fuera de success no hace nada.
func (f *LinkFlow) Finish() {
	if f.step != StepSuccess {
		return
	}
	if f.onComplete != nil {
		f.onComplete()
		return
	}
	if f.onClose != nil {
		f.onClose()
	}
}

// Dismiss aborta el flujo en cualquier paso y descarta los datos recolectados.
func (f *LinkFlow) Dismiss() {
	f.barcode = ""
	f.form = OwnerForm{}
	if f.onClose != nil {
		f.onClose()
	}
}
