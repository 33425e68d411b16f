package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Minimum employment seniority for the final step, in 30-day months
const minAntiguedadDias = 6 * 30

// WizardConfig holds the rules of the application wizard
type WizardConfig struct {
	RecencyWindowDays int
	// TestCUIL is exempt from the recency window
	TestCUIL string
	Location *time.Location
}

// WizardService runs the steps of the loan-application wizard. The client
// carries the accumulated state between steps.
type WizardService struct {
	guard  *SolicitudGuard
	bureau BureauLookup
	params *SimulationParamsService
	cfg    WizardConfig
	logger *logging.SafeLogger
	now    func() time.Time
}

// NewWizardService wires the wizard
func NewWizardService(guard *SolicitudGuard, bureau BureauLookup, params *SimulationParamsService, cfg WizardConfig, logger *logging.SafeLogger) *WizardService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RecencyWindowDays < 0 {
		cfg.RecencyWindowDays = DefaultRecencyWindowDays
	}
	return &WizardService{
		guard:  guard,
		bureau: bureau,
		params: params,
		cfg:    cfg,
		logger: logger.Named("wizard"),
		now:    time.Now,
	}
}

func (s *WizardService) today() time.Time {
	return s.now().In(s.cfg.Location)
}

// isTestCUIL reports whether cuil skips the recency window. No CUIL does
// when TestCUIL is unset.
func (s *WizardService) isTestCUIL(cuil string) bool {
	return s.cfg.TestCUIL != "" && cuil == s.cfg.TestCUIL
}

// Simular validates installments and amount against the simulation
// parameters and previews the installment value.
func (s *WizardService) Simular(ctx context.Context, req models.SimulacionRequest) (*models.SimulacionResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_simulacion")
	defer span.End()

	params, err := s.params.Get(ctx)
	if err != nil {
		s.logger.Warn("using default simulation params", zap.Error(err))
		params = models.DefaultSimulationParams()
	}

	var errs models.ValidationErrors
	switch {
	case req.Cuotas == 0:
		errs.Add("cuotas", "required", models.MensajeCuotasVacias)
	case req.Cuotas < params.MinCuotas || req.Cuotas > params.MaxCuotas:
		errs.Add("cuotas", "out_of_range",
			fmt.Sprintf("La cantidad de cuotas debe estar entre %d y %d", params.MinCuotas, params.MaxCuotas))
	}
	switch {
	case req.Monto == 0:
		errs.Add("monto", "required", models.MensajeMontoVacio)
	case req.Monto < params.MinMonto || req.Monto > params.MaxMonto:
		errs.Add("monto", "out_of_range",
			fmt.Sprintf("El monto debe estar entre %d y %d", params.MinMonto, params.MaxMonto))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	interes := params.InteresPara(req.Cuotas)
	total, cuota := PreviewInstallments(req.Monto, req.Cuotas, interes)

	return &models.SimulacionResponse{
		Cuotas:            req.Cuotas,
		Monto:             req.Monto,
		InteresPorcentaje: interes,
		MontoTotal:        total.StringFixed(2),
		ValorCuota:        cuota.StringFixed(2),
	}, nil
}

// PreviewInstallments computes total = monto * (1 + interes/100) and the
// per-installment value, both rounded to cents.
func PreviewInstallments(monto int64, cuotas int, interesPorcentaje float64) (total, cuota decimal.Decimal) {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(interesPorcentaje).Div(decimal.NewFromInt(100)))
	exact := decimal.NewFromInt(monto).Mul(factor)
	if cuotas <= 0 {
		return exact.Round(2), decimal.Zero
	}
	return exact.Round(2), exact.Div(decimal.NewFromInt(int64(cuotas))).Round(2)
}

// EvaluarEdad checks the minimum age. Underage applicants are persisted as
// menor_21 rejections and a *models.RejectionError is returned.
func (s *WizardService) EvaluarEdad(ctx context.Context, req models.EdadRequest) (*models.EdadResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_edad")
	defer span.End()

	birth, err := s.parseBirthdate(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}

	now := s.today()
	decision := EvaluateAge(birth, now)
	recordOutcome("edad", decision)

	if decision.Approved {
		return &models.EdadResponse{Aprobado: true, EdadMeses: AgeInMonths(birth, now)}, nil
	}

	resultado := decision.Resultado
	id := s.persistRechazo(ctx, models.RechazoInput{
		Solicitud: models.Solicitud{
			Cuotas:          req.Cuotas,
			Monto:           req.Monto,
			FechaNacimiento: req.FechaNacimiento,
			Origen:          "paso2",
		},
		MotivoRechazo:       resultado.Descripcion,
		MotivoRechazoCodigo: decision.Motivo,
		Resultado:           &resultado,
	})

	return nil, &models.RejectionError{
		Motivo:      decision.Motivo,
		Descripcion: models.MensajeMenorDeEdad,
		Resultado:   &resultado,
		SolicitudID: id,
	}
}

// VerificarCuil validates the CUIL format and the recency window
func (s *WizardService) VerificarCuil(ctx context.Context, req models.CuilRequest) (*models.CuilResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_cuil")
	defer span.End()

	cuil, err := validateCUIL(req.CUIL)
	if err != nil {
		return nil, err
	}

	if s.isTestCUIL(cuil) {
		return &models.CuilResponse{CUIL: cuil, CanRegister: true, Verified: true}, nil
	}

	recency, err := s.guard.GetIdentityRecency(ctx, cuil, s.cfg.RecencyWindowDays)
	if err != nil {
		return nil, err
	}
	if !recency.CanRegister {
		return nil, &models.RecencyError{
			LastDate:   recency.LastDate,
			WindowDays: s.cfg.RecencyWindowDays,
			Message:    models.MensajeCuilRegistrado,
		}
	}

	return &models.CuilResponse{CUIL: cuil, CanRegister: true, Verified: recency.Verified}, nil
}

// VerificarIdentidad looks the CUIL up in the bureau and evaluates it. A
// rejection is persisted with the bureau snapshot. When the bureau cannot be
// reached the response asks for the name to be entered manually.
func (s *WizardService) VerificarIdentidad(ctx context.Context, req models.IdentidadRequest) (*models.IdentidadResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_identidad")
	defer span.End()

	cuil, err := validateCUIL(req.CUIL)
	if err != nil {
		return nil, err
	}

	record, err := s.bureau.Lookup(ctx, cuil)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrBureauNotFound):
		// no debtor record at all: evaluated as no products
		record = nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		s.logger.Warn("bureau unavailable, continuing with manual identity",
			zap.String("cuil", observability.MaskCUIL(cuil)),
			zap.Error(err))
		utils.AddSpanAttribute(span, "wizard.manual_override", true)
		return &models.IdentidadResponse{CUIL: cuil, ManualOverride: true}, nil
	}

	decision := EvaluateBureau(record)
	if birth, ok := utils.ParseDate(req.FechaNacimiento, s.cfg.Location); ok {
		decision = Evaluate(birth, record, s.today())
	}
	recordOutcome("identidad", decision)

	var nombreCompleto string
	var snapshot map[string]interface{}
	if record != nil {
		nombreCompleto = record.Denominacion
		snapshot = record.Raw
	}

	resultado := decision.Resultado
	if decision.Approved {
		return &models.IdentidadResponse{
			CUIL:      cuil,
			Nombre:    nombreCompleto,
			Resultado: &resultado,
			BCRA:      snapshot,
		}, nil
	}

	nombre, apellido := utils.SplitFullName(nombreCompleto)
	id := s.persistRechazo(ctx, models.RechazoInput{
		Solicitud: models.Solicitud{
			Nombre:          nombre,
			Apellido:        apellido,
			NombreCompleto:  nombreCompleto,
			CUIL:            models.StringPtr(cuil),
			Cuotas:          req.Cuotas,
			Monto:           req.Monto,
			FechaNacimiento: req.FechaNacimiento,
			BCRA:            snapshot,
			Origen:          "paso4",
		},
		MotivoRechazo:       resultado.Descripcion,
		MotivoRechazoCodigo: decision.Motivo,
		Resultado:           &resultado,
	})

	return nil, &models.RejectionError{
		Motivo:      decision.Motivo,
		Descripcion: resultado.Descripcion,
		Resultado:   &resultado,
		SolicitudID: id,
	}
}

// RechazarIdentidad persists that the applicant did not recognize the
// registered name shown for the CUIL.
func (s *WizardService) RechazarIdentidad(ctx context.Context, req models.IdentidadRechazoRequest) (*models.SolicitudResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_identidad_rechazo")
	defer span.End()

	cuil, err := validateCUIL(req.CUIL)
	if err != nil {
		return nil, err
	}

	nombre, apellido := utils.SplitFullName(req.Nombre)
	id, err := s.guard.SaveRechazo(ctx, models.RechazoInput{
		Solicitud: models.Solicitud{
			Nombre:          nombre,
			Apellido:        apellido,
			NombreCompleto:  req.Nombre,
			CUIL:            models.StringPtr(cuil),
			Cuotas:          req.Cuotas,
			Monto:           req.Monto,
			FechaNacimiento: req.FechaNacimiento,
			Origen:          "rechazo1",
		},
		MotivoRechazo:       models.MotivoTextoIdentidadNoConfirmada,
		MotivoRechazoCodigo: models.MotivoIdentidadNoConfirmada,
	})
	if err != nil {
		return nil, err
	}
	observability.EvaluationOutcomes.WithLabelValues("identidad", string(models.MotivoIdentidadNoConfirmada)).Inc()

	return &models.SolicitudResponse{
		ID:     id,
		Estado: models.EstadoRechazada,
		Motivo: models.MotivoIdentidadNoConfirmada,
	}, nil
}

// EnviarSolicitud validates the contact data, re-checks the recency window
// and persists the accepted application.
func (s *WizardService) EnviarSolicitud(ctx context.Context, req models.SolicitudRequest) (*models.SolicitudResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "wizard_solicitud")
	defer span.End()

	var errs models.ValidationErrors

	cuil := utils.NormalizeCUIL(req.CUIL)
	switch {
	case cuil == "":
		errs.Add("cuil", "required", models.MensajeCuilVacio)
	case !utils.IsValidCUILFormat(cuil):
		errs.Add("cuil", "invalid_format", models.MensajeCuilInvalido)
	}

	nombreCompleto := strings.Join(strings.Fields(req.Nombre), " ")
	if nombreCompleto == "" {
		errs.Add("nombre", "required", models.MensajeNombreVacio)
	}

	telefono := utils.NormalizeArgentinePhone(req.Telefono)
	switch {
	case len(telefono) < 10:
		errs.Add("telefono", "too_short", models.MensajeTelefonoCorto)
	case len(telefono) > 10:
		errs.Add("telefono", "too_long", models.MensajeTelefonoLargo)
	case !utils.IsPossibleArgentinePhone(telefono):
		errs.Add("telefono", "invalid", models.MensajeTelefonoInvalido)
	}

	email := utils.NormalizeEmail(req.Email)
	if email == "" || !utils.IsValidEmail(email) {
		errs.Add("email", "invalid", models.MensajeEmailInvalido)
	}

	if req.IngresoMensual != nil && *req.IngresoMensual < 0 {
		errs.Add("ingresoMensual", "out_of_range", models.MensajeIngresoNegativo)
	}

	if req.FechaIngreso != "" {
		ingreso, ok := utils.ParseDate(req.FechaIngreso, s.cfg.Location)
		switch {
		case !ok:
			errs.Add("fechaIngreso", "invalid", models.MensajeFechaIngreso)
		case ingreso.After(s.today().AddDate(0, 0, -minAntiguedadDias)):
			errs.Add("fechaIngreso", "too_recent", models.MensajeAntiguedad)
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	if !s.isTestCUIL(cuil) {
		recency, err := s.guard.GetIdentityRecency(ctx, cuil, s.cfg.RecencyWindowDays)
		if err != nil {
			return nil, err
		}
		if !recency.CanRegister {
			return nil, &models.RecencyError{
				LastDate:   recency.LastDate,
				WindowDays: s.cfg.RecencyWindowDays,
				Message:    models.MensajeCuilReciente,
			}
		}
	}

	nombre, apellido := utils.SplitFullName(nombreCompleto)
	id, err := s.guard.SaveAceptada(ctx, models.AceptadaInput{
		Solicitud: models.Solicitud{
			Nombre:          nombre,
			Apellido:        apellido,
			NombreCompleto:  nombreCompleto,
			CUIL:            models.StringPtr(cuil),
			Telefono:        models.StringPtr(telefono),
			Email:           models.StringPtr(email),
			Monto:           req.Monto,
			Cuotas:          req.Cuotas,
			IngresoMensual:  req.IngresoMensual,
			FechaIngreso:    req.FechaIngreso,
			FechaNacimiento: req.FechaNacimiento,
			BCRA:            req.BCRA,
			Owner:           req.Owner,
			Origen:          "paso5",
		},
	})
	if err != nil {
		return nil, err
	}

	resultado := models.ResultadoAprobado
	return &models.SolicitudResponse{
		ID:        id,
		Estado:    models.EstadoAceptada,
		Resultado: &resultado,
	}, nil
}

// persistRechazo saves a rejection found during the wizard. A failed save
// does not change the answer given to the applicant.
func (s *WizardService) persistRechazo(ctx context.Context, in models.RechazoInput) string {
	id, err := s.guard.SaveRechazo(ctx, in)
	if err != nil {
		s.logger.Error("failed to record rejection",
			zap.String("motivo", string(in.MotivoRechazoCodigo)),
			zap.String("origen", in.Solicitud.Origen),
			zap.Error(err))
		return ""
	}
	return id
}

func (s *WizardService) parseBirthdate(value string) (time.Time, error) {
	var errs models.ValidationErrors
	if value == "" {
		errs.Add("fechaNacimiento", "required", models.MensajeFechaVacia)
		return time.Time{}, errs
	}
	birth, ok := utils.ParseDate(value, s.cfg.Location)
	if !ok || birth.After(s.today()) {
		errs.Add("fechaNacimiento", "invalid", models.MensajeFechaInvalida)
		return time.Time{}, errs
	}
	return birth, nil
}

func validateCUIL(value string) (string, error) {
	var errs models.ValidationErrors
	cuil := utils.NormalizeCUIL(value)
	switch {
	case cuil == "":
		errs.Add("cuil", "required", models.MensajeCuilVacio)
	case !utils.IsValidCUILFormat(cuil):
		errs.Add("cuil", "invalid_format", models.MensajeCuilInvalido)
	}
	return cuil, errs.Err()
}

func recordOutcome(stage string, decision models.Decision) {
	result := "aprobado"
	if !decision.Approved {
		result = string(decision.Motivo)
	}
	observability.EvaluationOutcomes.WithLabelValues(stage, result).Inc()
}
