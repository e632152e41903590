package classify

// Candidate labels as authored in the rule branches. These are resolved
// against the catalog before any branch returns, so incidental trailing
// whitespace or accent drift in the catalog never reaches callers.
var (
	paymentLabels = []string{
		"PEDIDO PAGO",
		"PRIMER PAGO NACIONALIDAD (UN EXPEDIENTE)",
		"PRIMER PAGO NACIONALIDAD (VARIOS EXPEDIENTES)",
	}

	schedulingLabels = []string{
		"AGENDAR CITA",
		"CITA AGENDADA",
	}

	registryLabels = []string{
		"BÚSQUEDA DE ACTAS",
		"LEY DE MEMORIA DEMOCRÁTICA (LMD)",
	}

	workPendingLabels = []string{
		"PUEDO TRABAJAR CON LA RESIDENCIA EN TRÁMITE",
		"TRABAJAR CON RESIDENCIA DE FAMILIAR DE CIUDADANO DE LA UE EN TRÁMITE",
		"FAMILIAR UE 2025",
	}

	advisoryLabels = []string{
		"REMITIR A JULIA",
		"CUENTA BREVEMENTE",
		"FORMAS DE REGULARIZARSE",
	}

	spanishLabels = []string{
		"CUE 2025",
	}

	partnerFamilyLabels = []string{
		"FAMILIAR UE 2025",
		"PAREJA DE HECHO",
		"ARRAIGO FAMILIAR",
		"TRABAJAR CON RESIDENCIA DE FAMILIAR DE CIUDADANO DE LA UE EN TRÁMITE",
		"RESIDENCIA INDEPENDIENTE",
		"FAMILIARES DE CIUDADANOS CON NACIONALIDAD ESPAÑOLA",
		"REAGRUPACIÓN FAMILIAR",
	}

	childParentFamilyLabels = []string{
		"ARRAIGO FAMILIAR",
		"HIJO DE ESPAÑOL DE ORIGEN",
		"REAGRUPACIÓN FAMILIAR",
		"ESTAR A CARGO",
		"FAMILIARES DE CIUDADANOS CON NACIONALIDAD ESPAÑOLA",
		"RESIDENCIA INDEPENDIENTE",
	}

	ascendantFamilyLabels = []string{
		"ESTAR A CARGO",
		"REAGRUPACIÓN FAMILIAR",
		"FAMILIARES DE CIUDADANOS CON NACIONALIDAD ESPAÑOLA",
		"FAMILIAR UE 2025",
		"ARRAIGO FAMILIAR",
		"RESIDENCIA INDEPENDIENTE",
	}

	marriageNationalityLabels = []string{
		"NACIONALIDAD POR MATRIMONIO",
		"NACIONALIDAD 2024",
	}

	homologationLabels = []string{
		"HOMOLOGACIÓN",
	}

	investorLabels = []string{
		"RESIDENCIA PARA INVERSORES",
	}

	touristLabels = []string{
		"AUTORIZACIONES COMO TURISTA",
		"ESTUDIAR EN ESPAÑA",
		"ENTRAR COMO TURISTA",
		"NÓMADA DIGITAL",
		"EMPRENDER EN ESPAÑA",
		"RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO",
		"RESIDENCIA PARA INVERSORES",
	}

	studentLabels = []string{
		"RENOVACIÓN DE ESTUDIOS",
		"DESPUÉS DE ESTUDIOS",
		"MODIFICAR DE ESTUDIOS A CUENTA AJENA",
		"MODIFICAR DE ESTUDIOS A CUENTA PROPIA",
		"MODIFICACIÓN DE FAMILIARES DE ESTUDIANTE",
		"ERROR EN LA RESOLUCIÓN DE ESTUDIANTES",
		"ESTUDIAR EN ESPAÑA",
		"FORMAS DE REGULARIZARSE",
	}

	residentLabels = []string{
		"NACIONALIDAD 2024",
		"REAGRUPACIÓN FAMILIAR",
		"RESIDENCIA INDEPENDIENTE",
		"PUEDO TRABAJAR CON LA RESIDENCIA EN TRÁMITE",
		"CUE 2025",
		"FORMAS DE REGULARIZARSE",
	}

	arraigoLabels = []string{
		"ARRAIGO SOCIAL",
		"ARRAIGO SOCIOLABORAL",
		"ARRAIGO SOCIOFORMATIVO",
		"ARRAIGO FAMILIAR",
		"ARRAIGO DE SEGUNDA OPORTUNIDAD",
		"FORMAS DE REGULARIZARSE",
	}

	asylumLabels = []string{
		"ASILO",
		"FORMAS DE REGULARIZARSE",
	}

	outsideWorkLabels = []string{
		"EMIGRAR SIN PASAPORTE EUROPEO",
		"RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO",
		"RESIDENCIA PARA INVERSORES",
		"NÓMADA DIGITAL",
		"EMPRENDER EN ESPAÑA",
		"ENTRAR COMO TURISTA",
	}

	outsideFamilyLabels = []string{
		"REAGRUPACIÓN FAMILIAR",
		"FAMILIARES DE CIUDADANOS CON NACIONALIDAD ESPAÑOLA",
		"ESTAR A CARGO",
	}

	outsideNationalityLabels = []string{
		"NACIONALIDAD 2024",
		"NACIONALIDAD POR MATRIMONIO",
		"NACIONALIDAD POR APELLIDOS",
		"LEY DE MEMORIA DEMOCRÁTICA (LMD)",
		"BÚSQUEDA DE ACTAS",
	}

	memoryLawLabels = []string{
		"LEY DE MEMORIA DEMOCRÁTICA (LMD)",
		"RESIDIR MIENTRAS ESPERAMOS LMD",
	}

	outsideFallbackLabels = []string{
		"FORMAS DE REGULARIZARSE",
		"CUENTA BREVEMENTE",
	}
)

// Labels for the time-gated arraigo paths, referenced by the removal logic.
const (
	labelArraigoSocial       = "ARRAIGO SOCIAL"
	labelArraigoSociolaboral = "ARRAIGO SOCIOLABORAL"
	labelArraigoFormativo    = "ARRAIGO SOCIOFORMATIVO"
	labelRecursoContencioso  = "RECURSO CONTENCIOSO"
)
