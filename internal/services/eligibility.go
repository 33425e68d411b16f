package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/models"
)

const (
	// MinimumAgeMonths is 18 years and 6 months
	MinimumAgeMonths = 222
	// MaxActiveEntities is the number of active products tolerated in the latest period
	MaxActiveEntities = 5
)

// AgeInMonths counts whole months from birthdate to now. A month is not
// complete until now reaches the birth day-of-month.
func AgeInMonths(birthdate, now time.Time) int {
	by, bm, bd := birthdate.Date()
	ny, nm, nd := now.Date()

	months := (ny-by)*12 + int(nm-bm)
	if nd < bd {
		months--
	}
	return months
}

// EvaluateAge rejects applicants younger than MinimumAgeMonths. The boundary is inclusive.
func EvaluateAge(birthdate, now time.Time) models.Decision {
	if AgeInMonths(birthdate, now) < MinimumAgeMonths {
		return models.Reject(models.MotivoMenor21)
	}
	return models.Approve()
}

// EvaluateBureau classifies a BCRA debtor record. The most recent period is
// the active one and every other period is historical. Rules are applied in
// this order and the first match wins:
//
//  1. no record or no periods: bcra_sin_productos
//  2. more than MaxActiveEntities active products: bcra_demasiados_activos
//  3. some active product in situation >= 2: bcra_mora_activa
//  4. active period empty: no historical products is bcra_sin_productos,
//     all historical in situation <= 1 approves, anything else is bcra_mora_historica
//  5. active period clean: some historical product in situation > 2 is
//     bcra_mora_historica, otherwise approved
func EvaluateBureau(record *models.BureauRecord) models.Decision {
	if record == nil || len(record.Periodos) == 0 {
		return models.Reject(models.MotivoSinProductos)
	}

	periodos := sortPeriodosDesc(record.Periodos)
	activos := periodos[0].Entidades

	var historicos []models.BureauEntidad
	for _, p := range periodos[1:] {
		historicos = append(historicos, p.Entidades...)
	}

	if len(activos) > MaxActiveEntities {
		return models.Reject(models.MotivoDemasiadosActivos)
	}

	if len(activos) == 0 {
		if len(historicos) == 0 {
			return models.Reject(models.MotivoSinProductos)
		}
		if maxSituacion(historicos) <= 1 {
			return models.Approve()
		}
		return models.Reject(models.MotivoMoraHistorica)
	}

	if maxSituacion(activos) >= 2 {
		return models.Reject(models.MotivoMoraActiva)
	}

	if len(historicos) > 0 && maxSituacion(historicos) > 2 {
		return models.Reject(models.MotivoMoraHistorica)
	}
	return models.Approve()
}

// Evaluate runs the age check first and the bureau check only when age passes.
func Evaluate(birthdate time.Time, record *models.BureauRecord, now time.Time) models.Decision {
	if d := EvaluateAge(birthdate, now); !d.Approved {
		return d
	}
	return EvaluateBureau(record)
}

func maxSituacion(entidades []models.BureauEntidad) int {
	highest := 0
	for _, e := range entidades {
		if e.Situacion > highest {
			highest = e.Situacion
		}
	}
	return highest
}

// sortPeriodosDesc orders periods newest first without touching the input.
// Numeric period tokens compare as numbers; anything else falls back to string order.
func sortPeriodosDesc(periodos []models.BureauPeriodo) []models.BureauPeriodo {
	sorted := make([]models.BureauPeriodo, len(periodos))
	copy(sorted, periodos)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.TrimSpace(sorted[i].Periodo)
		b := strings.TrimSpace(sorted[j].Periodo)
		na, errA := strconv.ParseInt(a, 10, 64)
		nb, errB := strconv.ParseInt(b, 10, 64)
		if errA == nil && errB == nil {
			return na > nb
		}
		return a > b
	})
	return sorted
}
