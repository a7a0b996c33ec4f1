package notification

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	defaultSenderName = "Reserva de Salones"
	dateLayout        = "02/01/2006"

	softCascadeReason = "Disponibilidad prioritaria en ese horario."
)

// Notifier turns domain events into messages. Every method is fire-and-forget:
// rendering and delivery failures are logged, never returned.
type Notifier struct {
	queue      Queue
	config     ConfigResolver
	marker     ReservationMarker
	logger     Logger
	senderName string
	publicURL  string
}

// NewNotifier senderName and publicURL are used when the tenant config leaves them empty
func NewNotifier(queue Queue, config ConfigResolver, marker ReservationMarker, senderName, publicURL string, logger Logger) *Notifier {
	if senderName == "" {
		senderName = defaultSenderName
	}
	return &Notifier{
		queue:      queue,
		config:     config,
		marker:     marker,
		logger:     logger,
		senderName: senderName,
		publicURL:  publicURL,
	}
}

// ReservationCreated pending notice + admin alert, or confirmation + concierge desk alert
func (n *Notifier) ReservationCreated(ctx context.Context, r *domain.Reservation) {
	if r.IsPending() {
		n.send(ctx, r.TenantID, n.pendingBody(ctx, r), KindPending, []string{r.RequesterEmail},
			subject("Reserva pendiente", r), nil)
		n.send(ctx, r.TenantID, n.adminAlertBody(r), KindAdminPendingAlert, n.config.AdminEmails(ctx, r.TenantID),
			subject("Pendiente de aprobación", r), nil)
		return
	}

	n.send(ctx, r.TenantID, n.confirmationBody(ctx, r), KindConfirmation, []string{r.RequesterEmail},
		subject("Reserva confirmada", r), nil)
	n.conciergeDesk(ctx, r)
}

// ReservationApproved approval notice + concierge desk alert
func (n *Notifier) ReservationApproved(ctx context.Context, r *domain.Reservation) {
	body := Body{
		Title:     "Reserva aprobada",
		Preheader: fmt.Sprintf("La administración aprobó tu reserva para %s.", r.SalonName),
		Paragraphs: []string{
			fmt.Sprintf("Hola %s,", r.RequesterName),
			"La administración revisó tu solicitud y la reserva fue aprobada. Estos son los detalles confirmados:",
			"Si necesitas desistir de la reserva puedes cancelarla desde el sistema con el botón.",
		},
		Details:  reservationDetails(r),
		CTAURL:   n.cancelURL(ctx, r),
		CTALabel: "Cancelar reserva",
		Footer:   "Gracias por utilizar el sistema de reservas.",
	}
	n.send(ctx, r.TenantID, body, KindApproval, []string{r.RequesterEmail}, subject("Reserva aprobada", r), nil)
	n.conciergeDesk(ctx, r)
}

// ReservationCancelled cancellation notice to the requester
func (n *Notifier) ReservationCancelled(ctx context.Context, r *domain.Reservation) {
	reason := r.CancellationReason
	switch {
	case reason == domain.ReasonCascadeCancellation:
		reason = softCascadeReason
	case strings.TrimSpace(reason) == "":
		reason = "No especificado"
	}

	body := Body{
		Title:     "Reserva cancelada",
		Preheader: fmt.Sprintf("Se canceló la reserva de %s para el %s.", r.SalonName, r.Date.Format(dateLayout)),
		Paragraphs: []string{
			fmt.Sprintf("Se canceló la reserva del salón %s para el %s a las %s. Lamentamos los inconvenientes.",
				r.SalonName, r.Date.Format(dateLayout), r.StartTime.Format12h()),
			"Motivo: " + reason,
			"Si aún necesitas el espacio, puedes realizar una nueva reserva desde el sistema.",
		},
		CTAURL:   n.appURL(ctx),
		CTALabel: "Hacer nueva reserva",
		Footer:   "Si esto fue un error, crea una nueva reserva o contacta a administración.",
	}
	n.send(ctx, r.TenantID, body, KindCancellation, []string{r.RequesterEmail}, subject("Reserva cancelada", r), nil)
}

// ConciergeAssigned assignment notice to the concierge
func (n *Notifier) ConciergeAssigned(ctx context.Context, r *domain.Reservation, c *domain.Concierge) {
	if c == nil || strings.TrimSpace(c.Email) == "" {
		n.logger.Warn("ConciergeAssigned: concierge of reservation %s has no email", r.ID)
		return
	}
	body := Body{
		Title:     "Nueva asignación de conserjería",
		Preheader: fmt.Sprintf("Asignación en %s el %s.", r.SalonName, r.Date.Format(dateLayout)),
		Paragraphs: []string{
			fmt.Sprintf("Hola %s,", c.Name),
			"Se te asignó el apoyo de conserjería para el siguiente evento:",
		},
		Details: []Detail{
			{Label: "Salón", Value: r.SalonName},
			{Label: "Fecha", Value: r.Date.Format(dateLayout)},
			{Label: "Horario", Value: timeRange(r)},
			{Label: "Evento", Value: r.EventName},
			{Label: "Solicitante", Value: fmt.Sprintf("%s (%s)", r.RequesterName, r.RequesterEmail)},
		},
		Footer: "Gracias por su apoyo logístico.",
	}
	n.send(ctx, r.TenantID, body, KindConciergeAssigned, []string{c.Email}, subject("Asignación de conserje", r), nil)
}

// AccessRequested alert to administrators about a new access request
func (n *Notifier) AccessRequested(ctx context.Context, u *domain.User, recipients []string) {
	body := Body{
		Title:     "Solicitud de acceso",
		Preheader: fmt.Sprintf("%s solicitó acceso al sistema de reservas.", u.Email),
		Paragraphs: []string{
			"Hola equipo de administración,",
			"Se registró una nueva solicitud de acceso al sistema de reservas.",
		},
		Details: []Detail{
			{Label: "Nombre", Value: u.Name},
			{Label: "Correo", Value: u.Email},
			{Label: "Departamento", Value: u.Department},
			{Label: "Extensión", Value: u.Extension},
		},
		Notice: "Revisa la solicitud y activa al usuario desde el panel administrativo.",
		CTAURL: n.appURL(ctx), CTALabel: "Abrir panel administrativo",
	}
	n.send(ctx, u.TenantID, body, KindAccessRequest, recipients, "Solicitud de acceso - "+u.Email, nil)
}

// DigestMessage builds the daily agenda mail; ok is false when there is nothing to send
func (n *Notifier) DigestMessage(ctx context.Context, date time.Time, reservations []*domain.Reservation, recipients []string) (Message, bool, error) {
	if len(recipients) == 0 {
		return Message{}, false, nil
	}

	bySalon := make(map[string][]*domain.Reservation)
	for _, r := range reservations {
		bySalon[r.SalonName] = append(bySalon[r.SalonName], r)
	}
	names := make([]string, 0, len(bySalon))
	for name := range bySalon {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		rows := bySalon[name]
		sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Minutes() < rows[j].StartTime.Minutes() })
		details := make([]Detail, 0, len(rows))
		for _, r := range rows {
			value := fmt.Sprintf("%s - %s (%s)", r.EventName, r.RequesterName, r.RequesterEmail)
			if r.ConciergeRequired {
				value += " · Conserje: " + orDash(r.ConciergeCode)
			}
			details = append(details, Detail{Label: timeRange(r), Value: value})
		}
		sections = append(sections, Section{Heading: name, Details: details})
	}

	paragraphs := []string{"Hola equipo,", fmt.Sprintf("Esta es la agenda de salones para hoy (%d reservas).", len(reservations))}
	if len(reservations) == 0 {
		paragraphs = []string{"Hola equipo,", "No hay reservas aprobadas para hoy."}
	}

	html, err := Render(Body{
		Title:      "Agenda de hoy",
		Preheader:  "Reservas aprobadas del " + date.Format(dateLayout),
		Paragraphs: paragraphs,
		Sections:   sections,
		CTAURL:     n.appURL(ctx),
		CTALabel:   "Abrir sistema de reservas",
	})
	if err != nil {
		return Message{}, false, err
	}

	return Message{
		Kind:       KindDailyDigest,
		To:         recipients,
		SenderName: n.senderNameFor(ctx, domain.SuperScope),
		ReplyTo:    n.config.Resolve(ctx, domain.SuperScope, domain.KeyMailReplyTo),
		Subject:    "Reserva de Salones | Agenda de hoy - " + date.Format(dateLayout),
		HTMLBody:   html,
	}, true, nil
}

// ReminderMessage builds the day-before reminder of r
func (n *Notifier) ReminderMessage(ctx context.Context, r *domain.Reservation) (Message, error) {
	html, err := Render(n.withContact(ctx, r.TenantID, Body{
		Title:     "Recordatorio de reserva",
		Preheader: fmt.Sprintf("Mañana tienes una reserva en %s.", r.SalonName),
		Paragraphs: []string{
			fmt.Sprintf("Hola %s,", r.RequesterName),
			"Te recordamos que mañana tienes la siguiente reserva:",
			"Si ya no necesitas el espacio, por favor cancélalo para liberarlo.",
		},
		Details:  reservationDetails(r),
		CTAURL:   n.cancelURL(ctx, r),
		CTALabel: "Cancelar reserva",
	}))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:       KindReminder,
		To:         []string{r.RequesterEmail},
		SenderName: n.senderNameFor(ctx, r.TenantID),
		ReplyTo:    n.config.Resolve(ctx, r.TenantID, domain.KeyMailReplyTo),
		Subject:    subject("Recordatorio", r),
		HTMLBody:   html,
	}, nil
}

func (n *Notifier) conciergeDesk(ctx context.Context, r *domain.Reservation) {
	if !r.ConciergeRequired {
		return
	}
	recipients := domain.ParseEmailList(n.config.Resolve(ctx, domain.SuperScope, domain.KeyConciergeEmails))
	body := Body{
		Title:     "Se requiere asignación de conserje",
		Preheader: fmt.Sprintf("Reserva en %s - %s %s", r.SalonName, r.Date.Format(dateLayout), r.StartTime.Format12h()),
		Paragraphs: []string{
			"Hola equipo de Conserjería,",
			"Se registró una nueva reserva que requiere asignación de conserje. A continuación, el resumen del evento.",
		},
		Details: []Detail{
			{Label: "Salón", Value: r.SalonName},
			{Label: "Fecha", Value: r.Date.Format(dateLayout)},
			{Label: "Horario", Value: timeRange(r)},
			{Label: "Evento", Value: r.EventName},
			{Label: "Solicitante", Value: fmt.Sprintf("%s (%s)", r.RequesterName, r.RequesterEmail)},
		},
		Notice:   "Verifica conflictos de horario antes de asignar un conserje activo.",
		CTAURL:   n.appURL(ctx),
		CTALabel: "Asignar conserje ahora",
		Footer:   "Gracias por su apoyo logístico.",
	}

	id := r.ID
	onSent := func(ctx context.Context) {
		if n.marker == nil {
			return
		}
		if err := n.marker.MarkConciergeNotified(ctx, id); err != nil {
			n.logger.Error("ConciergeDesk: failed to mark reservation %s as notified: %v", id, err)
		}
	}
	n.send(ctx, r.TenantID, body, KindConciergeDesk, recipients, subject("Asignación de conserje", r), onSent)
}

func (n *Notifier) confirmationBody(ctx context.Context, r *domain.Reservation) Body {
	return Body{
		Title:     "Reserva confirmada",
		Preheader: fmt.Sprintf("Tu reserva para %s el %s fue registrada.", r.SalonName, r.Date.Format(dateLayout)),
		Paragraphs: []string{
			fmt.Sprintf("Hola %s,", r.RequesterName),
			"Tu reserva fue registrada con éxito. Estos son los detalles:",
			"¿Ya no necesitas este espacio? Puedes cancelar la reserva con el botón.",
		},
		Details:  reservationDetails(r),
		CTAURL:   n.cancelURL(ctx, r),
		CTALabel: "Cancelar reserva",
		Footer:   "Si tienes dudas, responde a este correo o contacta al equipo de coordinación.",
	}
}

func (n *Notifier) pendingBody(ctx context.Context, r *domain.Reservation) Body {
	return Body{
		Title:     "Reserva pendiente de aprobación",
		Preheader: fmt.Sprintf("Tu solicitud para %s está pendiente de aprobación.", r.SalonName),
		Paragraphs: []string{
			fmt.Sprintf("Hola %s,", r.RequesterName),
			"Recibimos tu solicitud de reserva y se envió a la administración para aprobación. A continuación, el resumen del evento:",
			"Si ya no necesitas el espacio puedes cancelar la solicitud con el botón.",
		},
		Details:  reservationDetails(r),
		Notice:   "Este salón es restringido y requiere aprobación de la administración. Tu reserva aún no está confirmada.",
		CTAURL:   n.cancelURL(ctx, r),
		CTALabel: "Cancelar solicitud",
		Footer:   "La administración revisará tu solicitud y recibirás un correo con la decisión.",
	}
}

func (n *Notifier) adminAlertBody(r *domain.Reservation) Body {
	return Body{
		Title:     "Nueva reserva pendiente de aprobación",
		Preheader: fmt.Sprintf("Solicitud registrada para %s.", r.SalonName),
		Paragraphs: []string{
			"Hola equipo de administración,",
			"Se registró una nueva reserva en un salón restringido y requiere aprobación.",
		},
		Details: []Detail{
			{Label: "Salón", Value: r.SalonName},
			{Label: "Fecha", Value: r.Date.Format(dateLayout)},
			{Label: "Hora", Value: timeRange(r)},
			{Label: "Evento", Value: r.EventName},
			{Label: "Solicitante", Value: fmt.Sprintf("%s (%s)", r.RequesterName, r.RequesterEmail)},
			{Label: "Público", Value: string(r.Audience)},
		},
		Notice: "Revisa la solicitud, apruébala o cancélala desde el panel administrativo.",
		Footer: "Gracias por gestionar las solicitudes restringidas.",
	}
}

func (n *Notifier) send(ctx context.Context, tenantID string, body Body, kind Kind, to []string, subj string, onSent func(context.Context)) {
	html, err := Render(n.withContact(ctx, tenantID, body))
	if err != nil {
		n.logger.Error("Notify: failed to render %s: %v", kind, err)
		return
	}
	n.queue.Dispatch(Message{
		Kind:       kind,
		To:         to,
		SenderName: n.senderNameFor(ctx, tenantID),
		ReplyTo:    n.config.Resolve(ctx, tenantID, domain.KeyMailReplyTo),
		Subject:    subj,
		HTMLBody:   html,
		OnSent:     onSent,
	})
}

func (n *Notifier) withContact(ctx context.Context, tenantID string, b Body) Body {
	b.ContactName = n.config.Resolve(ctx, tenantID, domain.KeyAdminContactName)
	b.ContactEmail = n.config.Resolve(ctx, tenantID, domain.KeyAdminContactEmail)
	b.ContactExtension = n.config.Resolve(ctx, tenantID, domain.KeyAdminContactExtension)
	return b
}

func (n *Notifier) senderNameFor(ctx context.Context, tenantID string) string {
	if name := n.config.Resolve(ctx, tenantID, domain.KeyMailSenderName); name != "" {
		return name
	}
	return n.senderName
}

func (n *Notifier) appURL(ctx context.Context) string {
	if u := n.config.Resolve(ctx, domain.SuperScope, domain.KeyPublicWebappURL); u != "" {
		return u
	}
	return n.publicURL
}

func (n *Notifier) cancelURL(ctx context.Context, r *domain.Reservation) string {
	base := n.appURL(ctx)
	if base == "" || r.Token == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "cancel=" + url.QueryEscape(r.Token)
}

func reservationDetails(r *domain.Reservation) []Detail {
	return []Detail{
		{Label: "Salón", Value: r.SalonName},
		{Label: "Fecha", Value: r.Date.Format(dateLayout)},
		{Label: "Hora", Value: timeRange(r)},
		{Label: "Evento", Value: r.EventName},
		{Label: "Asistentes", Value: strconv.Itoa(r.Capacity)},
		{Label: "Público", Value: string(r.Audience)},
	}
}

func subject(prefix string, r *domain.Reservation) string {
	return fmt.Sprintf("%s - %s - %s %s", prefix, r.SalonName, r.Date.Format(dateLayout), r.StartTime.Format12h())
}

func timeRange(r *domain.Reservation) string {
	return r.StartTime.Format12h() + " - " + r.EndTime.Format12h()
}

func orDash(s string) string {
	if s == "" {
		return "sin asignar"
	}
	return s
}
