package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"go.uber.org/zap"
)

// DefaultRecencyWindowDays is the cooldown between two applications of the same CUIL
const DefaultRecencyWindowDays = 30

// Fields that must not repeat across non-rejected applications, in check order
var strictUniqueFields = []string{"telefono", "email"}

// FieldOutcome is the result of a uniqueness check
type FieldOutcome string

const (
	FieldUnique      FieldOutcome = "unique"
	FieldDuplicate   FieldOutcome = "duplicate"
	FieldUnavailable FieldOutcome = "unavailable"
)

// FieldCheck reports a uniqueness check. Err is set when the store could not
// be queried; the check then fails open with Outcome FieldUnavailable.
type FieldCheck struct {
	Field   string
	Value   string
	Outcome FieldOutcome
	Err     error
}

// UniqueOptions narrows which existing applications count as duplicates
type UniqueOptions struct {
	// IgnoreEstados excludes matches in these statuses (case-insensitive)
	IgnoreEstados []string
	// SameCUIL excludes matches that belong to this CUIL
	SameCUIL string
}

// Recency is the cooldown state of a CUIL. Verified is false when the store
// could not be read and CanRegister was assumed.
type Recency struct {
	CanRegister bool
	LastDate    *time.Time
	Verified    bool
}

// SaveOptions controls SaveSolicitud
type SaveOptions struct {
	SkipUniqueValidation bool
}

// SolicitudGuard enforces phone/email uniqueness and the per-CUIL recency
// window, and persists application outcomes.
type SolicitudGuard struct {
	store  SolicitudStore
	logger *logging.SafeLogger
	now    func() time.Time
}

// NewSolicitudGuard creates a guard over store
func NewSolicitudGuard(store SolicitudStore, logger *logging.SafeLogger) *SolicitudGuard {
	return &SolicitudGuard{
		store:  store,
		logger: logger.Named("solicitud_guard"),
		now:    time.Now,
	}
}

// NormalizeFieldValue canonicalizes a field value for storage and comparison.
// Applying it twice yields the same value.
func NormalizeFieldValue(field, value string) string {
	switch field {
	case "email":
		return utils.NormalizeEmail(value)
	case "cuil", "telefono":
		return utils.OnlyDigits(value)
	default:
		return strings.TrimSpace(value)
	}
}

// CheckFieldUnique looks for other applications holding value in field.
// Only a cancelled caller context is returned as an error.
func (g *SolicitudGuard) CheckFieldUnique(ctx context.Context, field, value string, opts UniqueOptions) (FieldCheck, error) {
	check := FieldCheck{Field: field, Outcome: FieldUnique}
	if field == "" {
		return check, nil
	}
	normalized := NormalizeFieldValue(field, value)
	check.Value = normalized
	if normalized == "" {
		return check, nil
	}

	ctx, span := utils.TraceBusinessLogic(ctx, "check_field_unique")
	defer span.End()
	utils.AddSpanAttribute(span, "guard.field", field)

	docs, err := g.store.FindByField(ctx, field, normalized)
	if err != nil {
		if ctx.Err() != nil {
			return check, ctx.Err()
		}
		g.markUnavailable(field, err)
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"guard.field": field})
		check.Outcome = FieldUnavailable
		check.Err = err
		return check, nil
	}

	ignored := make(map[string]bool, len(opts.IgnoreEstados))
	for _, estado := range opts.IgnoreEstados {
		ignored[strings.ToLower(estado)] = true
	}
	sameCUIL := NormalizeFieldValue("cuil", opts.SameCUIL)

	for _, doc := range docs {
		if estado, ok := doc.Data["estado"].(string); ok && ignored[strings.ToLower(estado)] {
			continue
		}
		if sameCUIL != "" {
			docCUIL, _ := doc.Data["cuil"].(string)
			if docCUIL = NormalizeFieldValue("cuil", docCUIL); docCUIL != "" && docCUIL == sameCUIL {
				continue
			}
		}
		check.Outcome = FieldDuplicate
		break
	}

	observability.GuardOutcomes.WithLabelValues(field, string(check.Outcome)).Inc()
	utils.AddSpanAttribute(span, "guard.outcome", string(check.Outcome))
	return check, nil
}

// IsFieldUnique is true unless another application holds the value.
// An unreachable store counts as unique.
func (g *SolicitudGuard) IsFieldUnique(ctx context.Context, field, value string, opts UniqueOptions) (bool, error) {
	check, err := g.CheckFieldUnique(ctx, field, value, opts)
	if err != nil {
		return false, err
	}
	return check.Outcome != FieldDuplicate, nil
}

// GetIdentityRecency finds the most recent application for cuil and reports
// whether a new one is allowed: none found, or the latest is at least
// windowDays old.
func (g *SolicitudGuard) GetIdentityRecency(ctx context.Context, cuil string, windowDays int) (Recency, error) {
	normalized := NormalizeFieldValue("cuil", cuil)
	if normalized == "" {
		return Recency{CanRegister: true, Verified: true}, nil
	}

	ctx, span := utils.TraceBusinessLogic(ctx, "identity_recency")
	defer span.End()

	docs, err := g.store.FindByField(ctx, "cuil", normalized)
	if err != nil {
		if ctx.Err() != nil {
			return Recency{}, ctx.Err()
		}
		g.markUnavailable("cuil_recency", err)
		utils.RecordErrorInSpan(span, err, nil)
		return Recency{CanRegister: true, Verified: false}, nil
	}

	var latest *time.Time
	for _, doc := range docs {
		ts, ok := utils.ParseTimestamp(doc.Data["timestamp"])
		if !ok {
			ts, ok = utils.ParseTimestamp(doc.Data["fechaSolicitud"])
		}
		if ok && (latest == nil || ts.After(*latest)) {
			t := ts
			latest = &t
		}
	}

	recency := Recency{CanRegister: true, LastDate: latest, Verified: true}
	if latest != nil {
		cutoff := g.now().Add(-time.Duration(windowDays) * 24 * time.Hour)
		recency.CanRegister = !latest.After(cutoff)
	}

	outcome := "registrable"
	if !recency.CanRegister {
		outcome = "recent"
	}
	observability.GuardOutcomes.WithLabelValues("cuil_recency", outcome).Inc()
	utils.AddSpanAttribute(span, "guard.can_register", recency.CanRegister)
	return recency, nil
}

// IsIdentityRegistrable reports Recency.CanRegister
func (g *SolicitudGuard) IsIdentityRegistrable(ctx context.Context, cuil string, windowDays int) (bool, error) {
	recency, err := g.GetIdentityRecency(ctx, cuil, windowDays)
	if err != nil {
		return false, err
	}
	return recency.CanRegister, nil
}

// EnsureUniqueFields rejects doc when its telefono or email is held by a
// non-rejected application of a different CUIL.
func (g *SolicitudGuard) EnsureUniqueFields(ctx context.Context, doc *models.Solicitud) error {
	values := map[string]string{
		"telefono": models.StringValue(doc.Telefono),
		"email":    models.StringValue(doc.Email),
	}
	opts := UniqueOptions{
		IgnoreEstados: []string{string(models.EstadoRechazada)},
		SameCUIL:      models.StringValue(doc.CUIL),
	}

	var duplicated []string
	for _, field := range strictUniqueFields {
		if values[field] == "" {
			continue
		}
		unique, err := g.IsFieldUnique(ctx, field, values[field], opts)
		if err != nil {
			return err
		}
		if !unique {
			duplicated = append(duplicated, field)
		}
	}

	if len(duplicated) > 0 {
		return models.NewDuplicateFieldsError(duplicated)
	}
	return nil
}

// SaveSolicitud normalizes cuil, telefono and email (empty becomes null;
// telefono is reduced to its 10-digit national form),
// optionally enforces uniqueness and inserts the application.
func (g *SolicitudGuard) SaveSolicitud(ctx context.Context, doc *models.Solicitud, opts SaveOptions) (string, error) {
	sanitized := sanitizeSolicitud(doc)

	if !opts.SkipUniqueValidation {
		if err := g.EnsureUniqueFields(ctx, &sanitized); err != nil {
			return "", err
		}
	}

	id, err := g.store.Insert(ctx, &sanitized)
	if err != nil {
		g.logger.Error("failed to save solicitud",
			zap.String("estado", string(sanitized.Estado)),
			zap.String("cuil", observability.MaskCUIL(models.StringValue(sanitized.CUIL))),
			zap.Error(err))
		return "", fmt.Errorf("failed to save solicitud: %w", err)
	}

	observability.SolicitudesSaved.WithLabelValues(string(sanitized.Estado)).Inc()
	g.logger.Info("solicitud saved",
		zap.String("id", id),
		zap.String("estado", string(sanitized.Estado)),
		zap.String("cuil", observability.MaskCUIL(models.StringValue(sanitized.CUIL))))
	return id, nil
}

// SaveRechazo persists a rejected application without uniqueness checks.
// The reason text defaults to "Motivo no informado" and the code to
// sin_codigo; an explicit Resultado wins over the one mapped from the code,
// except APROBADO which a rejection never carries.
func (g *SolicitudGuard) SaveRechazo(ctx context.Context, in models.RechazoInput) (string, error) {
	doc := in.Solicitud
	doc.Estado = models.EstadoRechazada

	motivo := in.MotivoRechazo
	if motivo == "" {
		motivo = "Motivo no informado"
	}
	codigo := in.MotivoRechazoCodigo
	if codigo == "" {
		codigo = models.MotivoSinCodigo
	}
	doc.MotivoRechazo = &motivo
	doc.MotivoRechazoCodigo = &codigo

	doc.ClearResultado()
	if in.Resultado != nil && in.Resultado.Codigo != 0 && in.Resultado.Descripcion != "" &&
		in.Resultado.Codigo != models.ResultadoAprobado.Codigo {
		doc.SetResultado(*in.Resultado)
	} else if resultado, ok := models.ResultadoPorMotivo(codigo); ok {
		doc.SetResultado(resultado)
	}

	return g.SaveSolicitud(ctx, &doc, SaveOptions{SkipUniqueValidation: true})
}

// SaveAceptada persists an accepted application after full uniqueness
// validation. The result defaults to APROBADO.
func (g *SolicitudGuard) SaveAceptada(ctx context.Context, in models.AceptadaInput) (string, error) {
	doc := in.Solicitud
	doc.Estado = models.EstadoAceptada
	doc.MotivoRechazo = nil
	doc.MotivoRechazoCodigo = nil

	resultado := models.ResultadoAprobado
	if in.Resultado != nil && in.Resultado.Codigo != 0 && in.Resultado.Descripcion != "" {
		resultado = *in.Resultado
	}
	doc.SetResultado(resultado)

	return g.SaveSolicitud(ctx, &doc, SaveOptions{})
}

func (g *SolicitudGuard) markUnavailable(check string, err error) {
	observability.GuardUnavailable.WithLabelValues(check).Inc()
	observability.GuardOutcomes.WithLabelValues(check, string(FieldUnavailable)).Inc()
	g.logger.Warn("uniqueness store unavailable, allowing request",
		zap.String("check", check),
		zap.Error(err))
}

func sanitizeSolicitud(doc *models.Solicitud) models.Solicitud {
	out := *doc
	out.CUIL = normalizedPtr("cuil", doc.CUIL)
	out.Telefono = normalizedPtr("telefono", doc.Telefono)
	if out.Telefono != nil {
		out.Telefono = models.StringPtr(utils.NormalizeArgentinePhone(*out.Telefono))
	}
	out.Email = normalizedPtr("email", doc.Email)
	return out
}

func normalizedPtr(field string, value *string) *string {
	if value == nil {
		return nil
	}
	return models.StringPtr(NormalizeFieldValue(field, *value))
}
