package models

// Contact number quoted in applicant-facing messages
const TelefonoContacto = "1142681704"

// Applicant-facing messages of the wizard
const (
	MensajeCuotasVacias   = "La cantidad de cuotas no puede estar en blanco"
	MensajeMontoVacio     = "El monto no puede estar en blanco"
	MensajeFechaVacia     = "La fecha de nacimiento es obligatoria"
	MensajeFechaInvalida  = "Ingresá una fecha de nacimiento válida."
	MensajeMenorDeEdad    = "Debes ser mayor de 18 años y 6 meses para continuar. Comunicate al " + TelefonoContacto + " si necesitas asistencia."
	MensajeCuilVacio      = "CUIL/CUIT no puede estar en blanco"
	MensajeCuilInvalido   = "Ingresa un CUIL/CUIT válido"
	MensajeCuilRegistrado = "El CUIL ya fue registrado en los últimos 30 días. Solo se permite una solicitud cada 30 días."
	MensajeCuilReciente   = "El CUIL ingresado ya registra una solicitud en los últimos 30 días. Comunicate al " + TelefonoContacto + " para continuar con la gestión."
	MensajeNombreVacio    = "El nombre no puede estar en blanco"

	MensajeTelefonoCorto    = "El teléfono debe tener 10 dígitos. Faltan números. Ejemplo: " + TelefonoContacto + "."
	MensajeTelefonoLargo    = "El teléfono no debe superar los 10 dígitos. Cargalo sin prefijos (0, 15 o +54). Ejemplo: " + TelefonoContacto + "."
	MensajeTelefonoInvalido = "Ingresá un número de teléfono argentino válido de 10 dígitos. Ejemplo: " + TelefonoContacto + "."
	MensajeEmailInvalido    = "Ingresá un correo electrónico válido."
	MensajeIngresoNegativo  = "El ingreso mensual no puede ser negativo."
	MensajeFechaIngreso     = "Ingresá una fecha de ingreso válida."
	MensajeAntiguedad       = "La antigüedad laboral debe ser de al menos 6 meses."

	MensajeTelefonoDuplicado = "El teléfono ingresado ya fue utilizado en otra solicitud."
	MensajeEmailDuplicado    = "El correo electrónico ingresado ya fue utilizado en otra solicitud."
	MensajeDatosDuplicados   = "Ya existe una solicitud con los datos ingresados."
	MensajeErrorRegistro     = "Ocurrió un error al registrar la solicitud. Intentá nuevamente."
	MensajeErrorVerificacion = "Ocurrió un error al verificar el CUIL. Intenta de nuevo."

	MotivoTextoIdentidadNoConfirmada = "Identidad no confirmada por el solicitante"
)

// MensajeDuplicados picks the message for a duplicate_fields error.
// telefono wins over email, and a duplicate cuil reads as a recent application.
func MensajeDuplicados(fields []string) string {
	has := make(map[string]bool, len(fields))
	for _, f := range fields {
		has[f] = true
	}
	switch {
	case has["telefono"]:
		return MensajeTelefonoDuplicado
	case has["email"]:
		return MensajeEmailDuplicado
	case has["cuil"]:
		return MensajeCuilReciente
	default:
		return MensajeDatosDuplicados
	}
}
