package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	orderEntity "github.com/yusaCS/POS-system-project/src/order/domain/entity"
	"github.com/yusaCS/POS-system-project/src/pos/domain/entity"
	"github.com/yusaCS/POS-system-project/src/pos/domain/port"
)

// SettlementState estado del flujo de cobro
type SettlementState string

// Estados: Idle → Collecting → Validating → {Succeeded, Rejected} → Idle.
// Cancelar un diálogo abierto vuelve directo a Idle sin mutar nada.
const (
	StateIdle       SettlementState = "IDLE"
	StateCollecting SettlementState = "COLLECTING"
	StateValidating SettlementState = "VALIDATING"
	StateSucceeded  SettlementState = "SUCCEEDED"
	StateRejected   SettlementState = "REJECTED"
)

// PaymentMethod método de pago elegido al iniciar el cobro
type PaymentMethod string

const (
	MethodCash PaymentMethod = "Cash"
	MethodCard PaymentMethod = "Card"
)

// Mensajes que muestra el modal de estado de pago
const (
	msgInsufficientCash = "Insufficient Cash Amount! Please provide adequate cash."
	msgSubmitFailed     = "Payment could not be completed! The order was not saved."
)

// SettlementWorkflow máquina de estados del cobro de un pedido.
// Es de un solo escritor: mientras hay un envío en vuelo (Validating)
// cualquier segundo intento de confirmación se rechaza en vez de duplicar
// la venta, y el éxito ante el usuario está acoplado a que la persistencia
// haya sido exitosa (el sistema original reportaba éxito siempre).
type SettlementWorkflow struct {
	cart    *entity.Cart
	gateway port.OrderGateway
	cashier int
	now     func() time.Time

	mu       sync.Mutex
	state    SettlementState
	method   PaymentMethod
	message  string
	inFlight bool
}

// NewSettlementWorkflow crea el flujo en Idle para la caja dada
func NewSettlementWorkflow(cart *entity.Cart, gateway port.OrderGateway, cashier int) *SettlementWorkflow {
	return &SettlementWorkflow{
		cart:    cart,
		gateway: gateway,
		cashier: cashier,
		now:     time.Now,
		state:   StateIdle,
	}
}

// State retorna el estado actual
func (w *SettlementWorkflow) State() SettlementState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Message retorna el mensaje del último resultado (modal)
func (w *SettlementWorkflow) Message() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.message
}

// Begin abre el diálogo de pago para el método dado. El carrito vacío no
// se bloquea: cobrar $0.00 en efectivo es un caso borde permitido.
func (w *SettlementWorkflow) Begin(method PaymentMethod) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIdle {
		return entity.ErrInvalidTransition
	}
	if method != MethodCash && method != MethodCard {
		return entity.ErrInvalidTransition
	}
	w.state = StateCollecting
	w.method = method
	w.message = ""
	return nil
}

// Cancel cierra el diálogo de pago sin enviar ni tocar el carrito.
// Un envío ya en vuelo no se aborta; sólo se cancela el estado local.
func (w *SettlementWorkflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateCollecting {
		return entity.ErrInvalidTransition
	}
	w.state = StateIdle
	w.method = ""
	return nil
}

// ConfirmCash valida el efectivo entregado y, si alcanza, envía la venta.
// change = entregado − total. Con cambio negativo el cobro se rechaza y el
// carrito queda intacto para reintentar.
func (w *SettlementWorkflow) ConfirmCash(ctx context.Context, tendered decimal.Decimal) (string, error) {
	w.mu.Lock()
	// Ocupado no es lo mismo que estado inválido: un doble click durante
	// el envío se reporta como tal
	if w.inFlight {
		w.mu.Unlock()
		return "", entity.ErrSubmissionInFlight
	}
	if w.state != StateCollecting || w.method != MethodCash {
		w.mu.Unlock()
		return "", entity.ErrInvalidTransition
	}

	change := tendered.Sub(w.cart.Total())
	if change.IsNegative() {
		w.state = StateRejected
		w.message = msgInsufficientCash
		w.mu.Unlock()
		return msgInsufficientCash, nil
	}

	message := "Payment Successful! Change: $" + change.StringFixed(2)
	return w.submit(ctx, "Cash", message)
}

// ConfirmCard valida los datos de tarjeta y envía la venta. Sólo se pide
// compañía y últimos cuatro dígitos: nunca se captura la tarjeta completa,
// la etiqueta "<compañía> <últimos4>" es todo lo que se persiste.
func (w *SettlementWorkflow) ConfirmCard(ctx context.Context, company, lastFour string) (string, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return "", entity.ErrSubmissionInFlight
	}
	if w.state != StateCollecting || w.method != MethodCard {
		w.mu.Unlock()
		return "", entity.ErrInvalidTransition
	}

	if company == "" || lastFour == "" {
		// Campos requeridos: el diálogo sigue abierto
		w.mu.Unlock()
		return "", entity.ErrCardDetailsRequired
	}
	if len(lastFour) > 4 {
		lastFour = lastFour[len(lastFour)-4:]
	}

	message := "Payment of $" + w.cart.Total().StringFixed(2) + " Successful!"
	return w.submit(ctx, company+" "+lastFour, message)
}

// submit pasa a Validating, arma la venta y la envía por el gateway.
// Se entra con w.mu tomado y sin envío en vuelo; el lock se suelta durante
// la llamada de red y el flag inFlight bloquea confirmaciones duplicadas
// en el medio.
func (w *SettlementWorkflow) submit(ctx context.Context, payment, successMessage string) (string, error) {
	w.state = StateValidating
	w.inFlight = true

	sale, err := orderEntity.NewSale(w.cashier, payment, w.cart.IDs(), w.cart.Total(), w.now())
	if err != nil {
		w.state = StateRejected
		w.message = msgSubmitFailed
		w.inFlight = false
		w.mu.Unlock()
		return "", err
	}
	w.mu.Unlock()

	submitErr := w.gateway.Submit(ctx, sale)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if submitErr != nil {
		log.Printf("Error submitting order: %v", submitErr)
		w.state = StateRejected
		w.message = msgSubmitFailed
		return msgSubmitFailed, submitErr
	}

	w.state = StateSucceeded
	w.message = successMessage
	w.cart.Clear()
	return successMessage, nil
}

// Acknowledge cierra el modal de resultado y vuelve a Idle
func (w *SettlementWorkflow) Acknowledge() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateSucceeded && w.state != StateRejected {
		return entity.ErrInvalidTransition
	}
	w.state = StateIdle
	w.method = ""
	w.message = ""
	return nil
}
