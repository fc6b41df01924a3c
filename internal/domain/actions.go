package domain

import "time"

// ModifyNotice is the minimum lead time before check-in for modifications.
const ModifyNotice = 24 * time.Hour

// Action is a user-facing operation on a reservation.
type Action string

const (
	ActionPay      Action = "pay"
	ActionModify   Action = "modify"
	ActionCancel   Action = "cancel"
	ActionCheckout Action = "checkout"
)

// statusActions is the permitted-action table per status. Terminal states
// and unknown statuses map to no actions.
var statusActions = map[ReservationStatus][]Action{
	StatusPendientePago: {ActionPay},
	StatusConfirmada:    {ActionModify, ActionCancel},
	StatusOcupada:       {ActionCheckout},
	StatusCancelada:     {},
	StatusCompletada:    {},
}

// ActionsFor returns the actions the state table permits for a status.
// Unknown statuses yield an empty set, never an error.
func ActionsFor(status ReservationStatus) []Action {
	actions, ok := statusActions[status]
	if !ok {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

func hasAction(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate == a {
			return true
		}
	}
	return false
}

// PermittedActions returns the actions available on the reservation right
// now: the state table filtered by the allow flags and the modify window.
func (r *Reservation) PermittedActions(now time.Time) []Action {
	var out []Action
	for _, a := range ActionsFor(r.Status) {
		switch a {
		case ActionModify:
			if r.CanBeModified(now) {
				out = append(out, a)
			}
		case ActionCancel:
			if r.CanBeCancelled() {
				out = append(out, a)
			}
		default:
			out = append(out, a)
		}
	}
	return out
}

// StatusInfo is the display policy for a reservation status.
type StatusInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Policy      string `json:"policy"`
}

var statusInfos = map[ReservationStatus]StatusInfo{
	StatusPendientePago: {
		Label:       "Pendiente de pago",
		Color:       "#F97316",
		Description: "Tu reserva está registrada. Completá el pago para confirmarla.",
		Policy:      "La disponibilidad se mantiene por 24 horas o hasta que acredites el pago.",
	},
	StatusConfirmada: {
		Label:       "Confirmada",
		Color:       "#16A34A",
		Description: "Reserva confirmada. Podés modificarla o cancelarla según tus necesidades.",
		Policy:      "Los cambios están sujetos a disponibilidad y pueden aplicar cargos según la política del hotel.",
	},
	StatusOcupada: {
		Label:       "Check-in registrado",
		Color:       "#2563EB",
		Description: "La habitación está ocupada actualmente.",
		Policy:      "Recordá iniciar el check-out a tiempo para evitar cargos extra.",
	},
	StatusCancelada: {
		Label:       "Cancelada",
		Color:       "#94A3B8",
		Description: "La reserva fue cancelada. Conservá este resumen como comprobante.",
		Policy:      "No se permiten nuevas acciones sobre reservas canceladas.",
	},
	StatusCompletada: {
		Label:       "Check-out finalizado",
		Color:       "#0F172A",
		Description: "La estadía finalizó correctamente. Los datos quedan disponibles para consulta.",
		Policy:      "Comunicate con recepción si necesitás un comprobante o factura.",
	},
}

// unknownStatusInfo is the neutral fallback for unrecognized statuses.
var unknownStatusInfo = StatusInfo{
	Label:       "Estado desconocido",
	Color:       "#475569",
	Description: "Consultá la información registrada para tu reserva.",
	Policy:      "Comunicate con recepción para obtener más detalles.",
}

// InfoFor returns the display policy for a status. Unknown statuses render
// the neutral fallback with the raw status as label when present.
func InfoFor(status ReservationStatus) StatusInfo {
	if info, ok := statusInfos[status]; ok {
		return info
	}
	info := unknownStatusInfo
	if status != "" {
		info.Label = string(status)
	}
	return info
}
