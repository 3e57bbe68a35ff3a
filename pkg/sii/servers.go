package sii

// =============================================================================
// Servidores del SII. Solo datos de referencia: este módulo no envía DTEs;
// el cliente de cada integración decide cómo consumir estas URLs.
// =============================================================================

// Environment ambiente SII.
type Environment string

const (
	EnvCertificacion Environment = "certificacion" // maullin (pruebas)
	EnvProduccion    Environment = "produccion"    // palena
)

// Server host y servicios web de un ambiente SII.
type Server struct {
	Name string
	Host string
	URLs map[string]string
}

// Servers tabla de ambientes SII.
var Servers = map[Environment]Server{
	EnvCertificacion: {
		Name: "Certificación (Pruebas)",
		Host: "maullin.sii.cl",
		URLs: map[string]string{
			"seed":        "https://maullin.sii.cl/DTEWS/CrSeed.jws?WSDL",
			"token":       "https://maullin.sii.cl/DTEWS/GetTokenFromSeed.jws?WSDL",
			"upload":      "https://maullin.sii.cl/cgi_dte/UPL/DTEUpload",
			"queryEstDte": "https://maullin.sii.cl/DTEWS/QueryEstDte.jws?WSDL",
			"queryEstUp":  "https://maullin.sii.cl/DTEWS/QueryEstUp.jws?WSDL",
		},
	},
	EnvProduccion: {
		Name: "Producción",
		Host: "palena.sii.cl",
		URLs: map[string]string{
			"seed":        "https://palena.sii.cl/DTEWS/CrSeed.jws?WSDL",
			"token":       "https://palena.sii.cl/DTEWS/GetTokenFromSeed.jws?WSDL",
			"upload":      "https://palena.sii.cl/cgi_dte/UPL/DTEUpload",
			"queryEstDte": "https://palena.sii.cl/DTEWS/QueryEstDte.jws?WSDL",
			"queryEstUp":  "https://palena.sii.cl/DTEWS/QueryEstUp.jws?WSDL",
		},
	},
}

// GetServerURL devuelve la URL del servicio en el ambiente dado ("" si no existe).
func GetServerURL(env Environment, service string) string {
	return Servers[env].URLs[service]
}
