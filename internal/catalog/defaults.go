package catalog

import "github.com/julialegal/brujula/internal/model"

// DefaultTemplates is the built-in catalog, used when no CSV catalog is
// configured. Key order is the canonical catalog order; the GENERIC fallback
// returns it verbatim.
func DefaultTemplates() []model.Template {
	return []model.Template{
		{Key: "CUE 2025", Description: "Certificado de registro de ciudadano de la Unión."},
		{Key: "FAMILIAR UE 2025", Description: "Tarjeta de familiar de ciudadano de la Unión."},
		{Key: "PAREJA DE HECHO", Description: "Registro de pareja de hecho con ciudadano español o de la UE."},
		{Key: "TRABAJAR CON RESIDENCIA DE FAMILIAR DE CIUDADANO DE LA UE EN TRÁMITE", Description: "Trabajo mientras la tarjeta de familiar UE está en trámite."},
		{Key: "RESIDENCIA INDEPENDIENTE", Description: "Residencia independiente del familiar reagrupante."},
		{Key: "ARRAIGO SOCIAL", Description: "Arraigo social: tres años de permanencia continuada."},
		{Key: "ARRAIGO SOCIOLABORAL", Description: "Arraigo sociolaboral: dos años y relación laboral acreditable."},
		{Key: "ARRAIGO SOCIOFORMATIVO", Description: "Arraigo socioformativo: dos años y compromiso de formación."},
		{Key: "ARRAIGO FAMILIAR", Description: "Arraigo familiar por vínculo con español."},
		{Key: "ARRAIGO DE SEGUNDA OPORTUNIDAD", Description: "Arraigo para quien tuvo residencia y la perdió."},
		{Key: "FORMAS DE REGULARIZARSE", Description: "Panorama general de vías de regularización."},
		{Key: "REAGRUPACIÓN FAMILIAR", Description: "Reagrupación familiar en régimen general."},
		{Key: "ESTAR A CARGO", Description: "Acreditación de dependencia económica del familiar."},
		{Key: "FAMILIARES DE CIUDADANOS CON NACIONALIDAD ESPAÑOLA", Description: "Régimen de familiares de ciudadanos españoles."},
		{Key: "HIJO DE ESPAÑOL DE ORIGEN", Description: "Residencia para progenitores e hijos de españoles de origen."},
		{Key: "RENOVACIÓN DE ESTUDIOS", Description: "Renovación o prórroga de la estancia por estudios."},
		{Key: "DESPUÉS DE ESTUDIOS", Description: "Estancia tras finalizar los estudios, búsqueda de empleo."},
		{Key: "MODIFICAR DE ESTUDIOS A CUENTA AJENA", Description: "Modificación de estancia por estudios a residencia y trabajo por cuenta ajena."},
		{Key: "MODIFICAR DE ESTUDIOS A CUENTA PROPIA", Description: "Modificación de estancia por estudios a trabajo por cuenta propia."},
		{Key: "MODIFICACIÓN DE FAMILIARES DE ESTUDIANTE", Description: "Autorizaciones para familiares del estudiante."},
		{Key: "ERROR EN LA RESOLUCIÓN DE ESTUDIANTES", Description: "Subsanación de resoluciones erróneas de estudiantes."},
		{Key: "PUEDO TRABAJAR CON LA RESIDENCIA EN TRÁMITE", Description: "Trabajo con la solicitud de residencia en trámite."},
		{Key: "NACIONALIDAD 2024", Description: "Nacionalidad española por residencia."},
		{Key: "NACIONALIDAD POR MATRIMONIO", Description: "Nacionalidad por residencia tras matrimonio con español."},
		{Key: "NACIONALIDAD POR APELLIDOS", Description: "Nacionalidad por origen sefardí u otros supuestos por apellidos."},
		{Key: "RECURSO CONTENCIOSO", Description: "Recurso contencioso-administrativo contra denegaciones."},
		{Key: "LEY DE MEMORIA DEMOCRÁTICA (LMD)", Description: "Nacionalidad por la Ley de Memoria Democrática."},
		{Key: "RESIDIR MIENTRAS ESPERAMOS LMD", Description: "Opciones de residencia durante el trámite de la LMD."},
		{Key: "AUTORIZACIONES COMO TURISTA", Description: "Qué puede tramitar quien está como turista en España."},
		{Key: "ESTUDIAR EN ESPAÑA", Description: "Visado y estancia por estudios."},
		{Key: "ENTRAR COMO TURISTA", Description: "Requisitos de entrada como turista."},
		{Key: "NÓMADA DIGITAL", Description: "Residencia para teletrabajadores internacionales."},
		{Key: "EMPRENDER EN ESPAÑA", Description: "Residencia para emprendedores."},
		{Key: "RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO", Description: "Residencia para profesionales altamente cualificados."},
		{Key: "RESIDENCIA PARA INVERSORES", Description: "Residencia por inversión significativa de capital."},
		{Key: "EMIGRAR SIN PASAPORTE EUROPEO", Description: "Vías de emigración a España sin pasaporte comunitario."},
		{Key: "ASILO", Description: "Protección internacional y asilo."},
		{Key: "BÚSQUEDA DE ACTAS", Description: "Búsqueda de actas y partidas en registros civiles."},
		{Key: "HOMOLOGACIÓN", Description: "Homologación y equivalencia de títulos extranjeros."},
		{Key: "AGENDAR CITA", Description: "Agendar una cita de asesoría."},
		{Key: "CITA AGENDADA", Description: "Confirmación de cita agendada."},
		{Key: "PEDIDO PAGO", Description: "Solicitud de pago de honorarios."},
		{Key: "PRIMER PAGO NACIONALIDAD (UN EXPEDIENTE)", Description: "Primer pago de nacionalidad, un expediente."},
		{Key: "PRIMER PAGO NACIONALIDAD (VARIOS EXPEDIENTES)", Description: "Primer pago de nacionalidad, varios expedientes."},
		{Key: "REMITIR A JULIA", Description: "Derivación directa a revisión humana."},
		{Key: "CUENTA BREVEMENTE", Description: "Petición de más contexto al interesado."},
	}
}
