package models

// ResultadoEvaluacion is one of the fixed eligibility outcomes persisted with an application.
type ResultadoEvaluacion struct {
	Codigo      int    `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

var (
	ResultadoMenor21 = ResultadoEvaluacion{
		Codigo: 1, Nombre: "MENOR_21",
		Descripcion: "Rechazo por menor de 21 años.",
	}
	ResultadoDemasiadosActivos = ResultadoEvaluacion{
		Codigo: 2, Nombre: "DEMASIADOS_ACTIVOS",
		Descripcion: "Rechazo por más de 5 productos activos.",
	}
	ResultadoMoraActiva = ResultadoEvaluacion{
		Codigo: 3, Nombre: "MORA_ACTIVA",
		Descripcion: "Rechazo por situación 2 de los activos.",
	}
	ResultadoHistorialSuperiorDos = ResultadoEvaluacion{
		Codigo: 4, Nombre: "HISTORIAL_SUPERIOR_DOS",
		Descripcion: "Productos históricos supera situación 2 o no tiene prod. hist.",
	}
	ResultadoAprobado = ResultadoEvaluacion{
		Codigo: 5, Nombre: "APROBADO",
		Descripcion: "Aprobado: ninguno de los prod. hist. supera la situación 2 o todos en situación 1.",
	}
)

// ResultadosEvaluacion lists every outcome in code order
func ResultadosEvaluacion() []ResultadoEvaluacion {
	return []ResultadoEvaluacion{
		ResultadoMenor21,
		ResultadoDemasiadosActivos,
		ResultadoMoraActiva,
		ResultadoHistorialSuperiorDos,
		ResultadoAprobado,
	}
}

// MotivoRechazo is a wire-stable rejection reason code
type MotivoRechazo string

const (
	MotivoMenor21               MotivoRechazo = "menor_21"
	MotivoDemasiadosActivos     MotivoRechazo = "bcra_demasiados_activos"
	MotivoMoraActiva            MotivoRechazo = "bcra_mora_activa"
	MotivoMoraHistorica         MotivoRechazo = "bcra_mora_historica"
	MotivoSinProductos          MotivoRechazo = "bcra_sin_productos"
	MotivoIdentidadNoConfirmada MotivoRechazo = "identidad_no_confirmada"
	MotivoSinCodigo             MotivoRechazo = "sin_codigo"
)

// ResultadoPorMotivo maps a reason code to its evaluation result.
// Codes without a result, and unknown codes, return false.
func ResultadoPorMotivo(m MotivoRechazo) (ResultadoEvaluacion, bool) {
	switch m {
	case MotivoMenor21:
		return ResultadoMenor21, true
	case MotivoDemasiadosActivos:
		return ResultadoDemasiadosActivos, true
	case MotivoMoraActiva:
		return ResultadoMoraActiva, true
	case MotivoMoraHistorica, MotivoSinProductos:
		return ResultadoHistorialSuperiorDos, true
	case MotivoIdentidadNoConfirmada, MotivoSinCodigo:
		return ResultadoEvaluacion{}, false
	default:
		return ResultadoEvaluacion{}, false
	}
}

// Decision is the outcome of an eligibility evaluation
type Decision struct {
	Approved  bool                `json:"approved"`
	Motivo    MotivoRechazo       `json:"motivo,omitempty"`
	Resultado ResultadoEvaluacion `json:"resultado"`
}

func Approve() Decision {
	return Decision{Approved: true, Resultado: ResultadoAprobado}
}

// Reject builds a rejection whose result is the one mapped to the reason
func Reject(m MotivoRechazo) Decision {
	r, _ := ResultadoPorMotivo(m)
	return Decision{Motivo: m, Resultado: r}
}
