package models

// BureauRecord is the applicant's debtor record in the BCRA Central de Deudores.
type BureauRecord struct {
	Identificacion int64           `json:"identificacion"`
	Denominacion   string          `json:"denominacion"`
	Periodos       []BureauPeriodo `json:"periodos"`
	// Raw is the undecoded response body, attached to applications for audit
	Raw map[string]interface{} `json:"-"`
}

// BureauPeriodo is one monthly reporting period, e.g. "202405"
type BureauPeriodo struct {
	Periodo   string          `json:"periodo"`
	Entidades []BureauEntidad `json:"entidades"`
}

// BureauEntidad is a product held with one financial entity
type BureauEntidad struct {
	Entidad           string  `json:"entidad"`
	Situacion         int     `json:"situacion"`
	FechaSit1         string  `json:"fechaSit1,omitempty"`
	Monto             float64 `json:"monto"`
	DiasAtrasoPago    int     `json:"diasAtrasoPago"`
	Refinanciaciones  bool    `json:"refinanciaciones"`
	SituacionJuridica bool    `json:"situacionJuridica"`
	EnRevision        bool    `json:"enRevision"`
	ProcesoJud        bool    `json:"procesoJud"`
}

// BureauResponse is the envelope returned by GET /Deudas/{cuil}. Results is
// nil when the body carries no record.
type BureauResponse struct {
	Status  int           `json:"status"`
	Results *BureauRecord `json:"results"`
}
