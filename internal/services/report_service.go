package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultReportPerPage = 20
	MaxReportPerPage     = 100

	motivoAceptada    = "Procesamiento satisfactorio"
	motivoNoInformado = "Motivo no informado"

	// fecha label layout, e.g. "Sat Mar 15 2025"
	fechaLabelLayout = "Mon Jan 02 2006"
)

// CSVHeader is the column order of the report export
var CSVHeader = []string{
	"nombre",
	"apellido",
	"cuil",
	"telefono",
	"email",
	"monto",
	"cuotas",
	"estado",
	"motivoRechazo",
	"motivoRechazoCodigo",
	"resultadoEvaluacionCodigo",
	"resultadoEvaluacionDescripcion",
	"ingresoMensual",
	"fechaIngreso",
	"fechaSolicitud",
}

// ReportService serves the back-office listing of applications
type ReportService struct {
	store    SolicitudStore
	location *time.Location
	logger   *logging.SafeLogger
}

func NewReportService(store SolicitudStore, location *time.Location, logger *logging.SafeLogger) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		store:    store,
		location: location,
		logger:   logger.Named("report"),
	}
}

// BuildRow derives the display and filter fields of a stored application
func (s *ReportService) BuildRow(doc StoredDocument) models.ReportRow {
	d := doc.Data
	row := models.ReportRow{
		ID:                             doc.ID,
		Nombre:                         toSafeString(d["nombre"]),
		Apellido:                       toSafeString(d["apellido"]),
		CUIL:                           toSafeString(d["cuil"]),
		Telefono:                       toSafeString(d["telefono"]),
		Email:                          toSafeString(d["email"]),
		Monto:                          toSafeString(d["monto"]),
		Cuotas:                         toSafeString(d["cuotas"]),
		Estado:                         toSafeString(d["estado"]),
		MotivoRechazo:                  toSafeString(d["motivoRechazo"]),
		MotivoRechazoCodigo:            toSafeString(d["motivoRechazoCodigo"]),
		ResultadoEvaluacionCodigo:      toSafeString(d["resultadoEvaluacionCodigo"]),
		ResultadoEvaluacionDescripcion: toSafeString(d["resultadoEvaluacionDescripcion"]),
		IngresoMensual:                 toSafeString(d["ingresoMensual"]),
		FechaIngreso:                   toSafeString(d["fechaIngreso"]),
		FechaSolicitud:                 toSafeString(d["fechaSolicitud"]),
	}

	if ts, ok := utils.ParseTimestamp(d["timestamp"]); ok {
		ts = ts.In(s.location)
		row.Timestamp = &ts
		row.FechaLabel = ts.Format(fechaLabelLayout)
	}

	row.EstadoNormalizado = utils.NormalizeText(row.Estado)

	switch {
	case row.ResultadoEvaluacionDescripcion != "":
		row.MotivoResuelto = row.ResultadoEvaluacionDescripcion
	case row.EstadoNormalizado == string(models.EstadoAceptada):
		row.MotivoResuelto = motivoAceptada
	case row.MotivoRechazo != "":
		row.MotivoResuelto = row.MotivoRechazo
	default:
		row.MotivoResuelto = motivoNoInformado
	}

	// the evaluation code wins over the rejection code
	codigo := strings.TrimSpace(row.ResultadoEvaluacionCodigo)
	if codigo == "" {
		codigo = strings.TrimSpace(row.MotivoRechazoCodigo)
	}
	switch strings.ToLower(codigo) {
	case "", "null", "undefined":
		row.MotivoOpcion = utils.NormalizeText(row.MotivoResuelto)
	default:
		row.MotivoOpcion = codigo
	}

	row.SearchableText = utils.NormalizeText(strings.Join([]string{
		row.CUIL,
		row.Nombre,
		row.Apellido,
		row.Telefono,
		row.Email,
		row.Estado,
		row.MotivoRechazo,
		row.MotivoRechazoCodigo,
		row.ResultadoEvaluacionDescripcion,
		row.ResultadoEvaluacionCodigo,
		row.Cuotas,
		row.Monto,
		row.FechaLabel,
		row.MotivoResuelto,
	}, " "))

	return row
}

// List returns one page of the filtered listing with the facets of the
// date range
func (s *ReportService) List(ctx context.Context, q models.ReportQuery) (*models.ReportPage, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "report_list")
	defer span.End()

	rows, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	facets := BuildFacets(rows)
	filtered := SortRows(FilterRows(rows, q, facets), q.Sort)

	page := &models.ReportPage{Facets: facets}
	perPage := clampPerPage(q.PerPage)
	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	current := q.Page
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	page.Data = filtered[start:end]
	page.Pagination.Page = current
	page.Pagination.PerPage = perPage
	page.Pagination.Total = total
	page.Pagination.TotalPages = totalPages

	utils.AddSpanAttribute(span, "report.total", total)
	return page, nil
}

// ExportCSV writes every row matching q to w and returns the row count
func (s *ReportService) ExportCSV(ctx context.Context, q models.ReportQuery, w io.Writer) (int, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "report_export")
	defer span.End()

	rows, err := s.load(ctx, q)
	if err != nil {
		return 0, err
	}
	filtered := SortRows(FilterRows(rows, q, BuildFacets(rows)), q.Sort)

	if err := WriteCSV(w, filtered); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return 0, err
	}
	s.logger.Info("report exported", zap.Int("rows", len(filtered)))
	return len(filtered), nil
}

// Delete removes an application by id
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.ErrInvalidSolicitudID
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("solicitud deleted", zap.String("id", id))
	return nil
}

func (s *ReportService) load(ctx context.Context, q models.ReportQuery) ([]models.ReportRow, error) {
	query, err := s.dateRange(q)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.List(ctx, query)
	if err != nil {
		s.logger.Error("failed to list solicitudes", zap.Error(err))
		return nil, err
	}

	rows := make([]models.ReportRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, s.BuildRow(doc))
	}
	return rows, nil
}

// dateRange turns desde/hasta into a start-of-day / end-of-day range
func (s *ReportService) dateRange(q models.ReportQuery) (ListQuery, error) {
	var errs models.ValidationErrors
	var query ListQuery

	if q.Desde != "" {
		if from, ok := utils.ParseDate(q.Desde, s.location); ok {
			query.From = &from
		} else {
			errs.Add("desde", "invalid", "La fecha inicial no es válida.")
		}
	}
	if q.Hasta != "" {
		if day, ok := utils.ParseDate(q.Hasta, s.location); ok {
			to := day.AddDate(0, 0, 1).Add(-time.Millisecond)
			query.To = &to
		} else {
			errs.Add("hasta", "invalid", "La fecha final no es válida.")
		}
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		errs.Add("desde", "invalid_range", "La fecha inicial no puede ser posterior a la fecha final.")
	}
	if err := errs.Err(); err != nil {
		return ListQuery{}, err
	}
	return query, nil
}

// FilterRows applies the estado, motivo, column and search filters. A motivo
// or column value that is not among the facets is ignored.
func FilterRows(rows []models.ReportRow, q models.ReportQuery, facets models.ReportFacets) []models.ReportRow {
	estado := activeFilter(q.Estado)
	if estado != "" {
		estado = utils.NormalizeText(estado)
	}
	motivo := activeFilter(q.Motivo)
	if motivo != "" && !hasMotivo(facets.Motivos, motivo) {
		motivo = ""
	}

	columns := []struct {
		value   string
		options []string
		get     func(models.ReportRow) string
	}{
		{q.CUIL, facets.CUIL, func(r models.ReportRow) string { return r.CUIL }},
		{q.Nombre, facets.Nombre, func(r models.ReportRow) string { return r.Nombre }},
		{q.Apellido, facets.Apellido, func(r models.ReportRow) string { return r.Apellido }},
		{q.Telefono, facets.Telefono, func(r models.ReportRow) string { return r.Telefono }},
		{q.Fecha, facets.Fecha, func(r models.ReportRow) string { return r.FechaLabel }},
	}
	for i := range columns {
		v := activeFilter(columns[i].value)
		if v != "" && !contains(columns[i].options, v) {
			v = ""
		}
		columns[i].value = v
	}

	search := utils.NormalizeText(q.Search)

	filtered := make([]models.ReportRow, 0, len(rows))
next:
	for _, row := range rows {
		if estado != "" && row.EstadoNormalizado != estado {
			continue
		}
		if motivo != "" && row.MotivoOpcion != motivo {
			continue
		}
		for _, c := range columns {
			if c.value != "" && c.get(row) != c.value {
				continue next
			}
		}
		if search != "" && !strings.Contains(row.SearchableText, search) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// SortRows orders rows by one of the report sorters. Unknown sorters keep
// the store order.
func SortRows(rows []models.ReportRow, sorter string) []models.ReportRow {
	col := collate.New(language.Spanish)
	byText := func(get func(models.ReportRow) string) func(i, j int) bool {
		return func(i, j int) bool {
			return col.CompareString(get(rows[i]), get(rows[j])) < 0
		}
	}
	millis := func(r models.ReportRow) int64 {
		if r.Timestamp == nil {
			return 0
		}
		return r.Timestamp.UnixMilli()
	}

	switch sorter {
	case models.SortCUIL:
		sort.SliceStable(rows, byText(func(r models.ReportRow) string { return r.CUIL }))
	case models.SortNombre:
		sort.SliceStable(rows, byText(func(r models.ReportRow) string { return r.Nombre }))
	case models.SortApellido:
		sort.SliceStable(rows, byText(func(r models.ReportRow) string { return r.Apellido }))
	case models.SortTelefono:
		sort.SliceStable(rows, byText(func(r models.ReportRow) string { return r.Telefono }))
	case models.SortFechaAsc:
		sort.SliceStable(rows, func(i, j int) bool { return millis(rows[i]) < millis(rows[j]) })
	case models.SortFechaDesc:
		sort.SliceStable(rows, func(i, j int) bool { return millis(rows[i]) > millis(rows[j]) })
	}
	return rows
}

// BuildFacets collects the distinct column values and the motivo options,
// the latter sorted by label. The first label seen for a value is kept.
func BuildFacets(rows []models.ReportRow) models.ReportFacets {
	sets := map[string]map[string]struct{}{
		"cuil": {}, "nombre": {}, "apellido": {}, "telefono": {}, "fecha": {},
	}
	add := func(set, value string) {
		if value != "" {
			sets[set][value] = struct{}{}
		}
	}

	labels := make(map[string]string)
	var order []string
	for _, row := range rows {
		add("cuil", row.CUIL)
		add("nombre", row.Nombre)
		add("apellido", row.Apellido)
		add("telefono", row.Telefono)
		add("fecha", row.FechaLabel)

		if _, seen := labels[row.MotivoOpcion]; !seen {
			labels[row.MotivoOpcion] = row.MotivoResuelto
			order = append(order, row.MotivoOpcion)
		}
	}

	col := collate.New(language.Spanish)
	sorted := func(set map[string]struct{}) []string {
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		col.SortStrings(values)
		return values
	}

	motivos := make([]models.MotivoOption, 0, len(order))
	for _, value := range order {
		motivos = append(motivos, models.MotivoOption{Value: value, Label: labels[value]})
	}
	sort.SliceStable(motivos, func(i, j int) bool {
		return col.CompareString(motivos[i].Label, motivos[j].Label) < 0
	})

	return models.ReportFacets{
		CUIL:     sorted(sets["cuil"]),
		Nombre:   sorted(sets["nombre"]),
		Apellido: sorted(sets["apellido"]),
		Telefono: sorted(sets["telefono"]),
		Fecha:    sorted(sets["fecha"]),
		Motivos:  motivos,
	}
}

// WriteCSV writes the export header and one aligned record per row
func WriteCSV(w io.Writer, rows []models.ReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		fecha := ""
		if r.Timestamp != nil {
			fecha = r.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
		}
		record := []string{
			r.Nombre,
			r.Apellido,
			r.CUIL,
			r.Telefono,
			r.Email,
			r.Monto,
			r.Cuotas,
			r.Estado,
			r.MotivoRechazo,
			r.MotivoRechazoCodigo,
			r.ResultadoEvaluacionCodigo,
			r.ResultadoEvaluacionDescripcion,
			r.IngresoMensual,
			r.FechaIngreso,
			fecha,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func clampPerPage(n int) int {
	switch {
	case n <= 0:
		return DefaultReportPerPage
	case n > MaxReportPerPage:
		return MaxReportPerPage
	}
	return n
}

func activeFilter(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, models.FiltroTodos) {
		return ""
	}
	return v
}

func hasMotivo(options []models.MotivoOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// toSafeString renders a stored scalar, "" for nil
func toSafeString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		return models.StringValue(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}
