package dto

import "github.com/shopspring/decimal"

// EmisorRequest datos del emisor en una solicitud de emisión.
type EmisorRequest struct {
	RUT         string `json:"rut"`
	RazonSocial string `json:"razon_social"`
	Giro        string `json:"giro,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	Comuna      string `json:"comuna,omitempty"`
	Ciudad      string `json:"ciudad,omitempty"`
	Correo      string `json:"correo,omitempty"`
}

// ReceptorRequest datos del receptor en una solicitud de emisión.
type ReceptorRequest struct {
	RUT         string `json:"rut"`
	RazonSocial string `json:"razon_social"`
	Giro        string `json:"giro,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	Comuna      string `json:"comuna,omitempty"`
	Ciudad      string `json:"ciudad,omitempty"`
	Correo      string `json:"correo,omitempty"`
}

// ItemRequest línea de detalle. Monto fija el total de la línea directamente;
// si va ausente se calcula como cantidad × precio (cantidad ausente = 1).
type ItemRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion,omitempty"`
	Cantidad    *decimal.Decimal `json:"cantidad,omitempty"`
	Unidad      string           `json:"unidad,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Monto       *int64           `json:"monto,omitempty"`
	Impuestos   []int            `json:"impuestos,omitempty"`
	Exento      bool             `json:"exento,omitempty"`
}

// DescuentoRequest descuento o recargo global.
type DescuentoRequest struct {
	Tipo        string          `json:"tipo"` // "D" descuento, "R" recargo
	Valor       decimal.Decimal `json:"valor"`
	Porcentaje  bool            `json:"porcentaje,omitempty"` // true: Valor es %, false: monto fijo
	Glosa       string          `json:"glosa,omitempty"`
	SobreExento bool            `json:"sobre_exento,omitempty"`
}

// ReferenciaRequest referencia a otro documento tributario.
type ReferenciaRequest struct {
	TipoDoc string `json:"tipo_doc,omitempty"`
	Folio   string `json:"folio,omitempty"`
	Fecha   string `json:"fecha,omitempty"` // YYYY-MM-DD
	Codigo  int    `json:"codigo,omitempty"`
	Razon   string `json:"razon,omitempty"`
}

// EmitirDTERequest body para POST /api/dte/factura (y /validar, /pdf).
type EmitirDTERequest struct {
	TipoDTE      int                 `json:"tipo_dte"`
	Folio        int64               `json:"folio"`
	FechaEmision string              `json:"fecha_emision"` // YYYY-MM-DD
	FormaPago    int                 `json:"forma_pago,omitempty"`
	TasaIVA      *decimal.Decimal    `json:"tasa_iva,omitempty"` // ausente: tasa configurada
	Emisor       EmisorRequest       `json:"emisor"`
	Receptor     ReceptorRequest     `json:"receptor"`
	Items        []ItemRequest       `json:"items"`
	Descuentos   []DescuentoRequest  `json:"descuentos,omitempty"`
	Referencias  []ReferenciaRequest `json:"referencias,omitempty"`
}

// EmitirBoletaRequest body para POST /api/dte/boleta. Los precios de los
// ítems se interpretan con IVA incluido.
type EmitirBoletaRequest struct {
	Folio        int64              `json:"folio"`
	FechaEmision string             `json:"fecha_emision"`
	Exenta       bool               `json:"exenta,omitempty"` // true: boleta tipo 41
	Emisor       EmisorRequest      `json:"emisor"`
	Receptor     ReceptorRequest    `json:"receptor"`
	Items        []ItemRequest      `json:"items"`
	Descuentos   []DescuentoRequest `json:"descuentos,omitempty"`
}

// TotalesResponse totales del documento emitido. Los campos ausentes del
// documento van como null.
type TotalesResponse struct {
	MntNeto  *int64 `json:"mnt_neto,omitempty"`
	MntExe   *int64 `json:"mnt_exe,omitempty"`
	TasaIVA  string `json:"tasa_iva,omitempty"`
	IVA      *int64 `json:"iva,omitempty"`
	MntTotal int64  `json:"mnt_total"`
}

// EmisionResponse resultado de la emisión de un DTE.
type EmisionResponse struct {
	TrackID         string             `json:"track_id"` // identificador interno de la emisión
	TipoDTE         int                `json:"tipo_dte"`
	TipoNombre      string             `json:"tipo_nombre"`
	Folio           int64              `json:"folio"`
	FolioFormateado string             `json:"folio_formateado"`
	FechaEmision    string             `json:"fecha_emision"`
	Totales         TotalesResponse    `json:"totales"`
	TotalFormateado string             `json:"total_formateado"` // ej: "$1.234.567"
	Validacion      ValidacionResponse `json:"validacion"`
}

// ValidacionResponse reporte de validación estructural.
type ValidacionResponse struct {
	Valida  bool     `json:"valida"`
	Errores []string `json:"errores,omitempty"`
}

// ValidarRUTResponse respuesta de GET /api/rut/validar.
type ValidarRUTResponse struct {
	RUT        string `json:"rut"`
	Valido     bool   `json:"valido"`
	Formateado string `json:"formateado,omitempty"`
}

// TokenRequest body para POST /api/auth/token.
type TokenRequest struct {
	APIKey   string `json:"api_key"`
	ClientID string `json:"client_id"`
}

// TokenResponse token emitido.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // "Bearer"
	ExpiresIn int    `json:"expires_in"` // segundos
}
