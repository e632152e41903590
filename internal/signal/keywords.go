package signal

// Keyword sets for the free-text detectors. All entries are pre-folded
// (lowercase, no diacritics) so they can be matched against Fold output
// directly. Keeping them as named constants keeps the rule vocabulary
// reviewable without touching matching logic.

// EUCountries lists EU/EEA/Switzerland country names as they appear in the
// Spanish-language intake form.
var EUCountries = []string{
	"alemania", "austria", "belgica", "bulgaria", "chipre", "croacia",
	"dinamarca", "eslovenia", "eslovaquia", "espana", "estonia", "finlandia",
	"francia", "grecia", "hungria", "irlanda", "italia", "letonia",
	"lituania", "luxemburgo", "malta", "paises bajos", "polonia", "portugal",
	"republica checa", "rumania", "suecia",
	"noruega", "islandia", "liechtenstein", "suiza",
}

// SpanishNationalityKeywords match Spain itself.
var SpanishNationalityKeywords = []string{"espa", "spain"}

// Status alias tables. The form's status enum has drifted across versions,
// so each canonical status owns the surface forms that imply it.
var (
	IrregularStatusAliases = []string{"irregular", "sin papeles"}
	StudentStatusAliases   = []string{"student", "estudiante", "estudios"}
	ResidentStatusAliases  = []string{"resident", "regular", "residencia", "nie"}
	TouristStatusAliases   = []string{"tourist", "turista"}
	AsylumStatusAliases    = []string{"asylum", "asilo", "proteccion internacional"}
)

// TrainingKeywords signal a formative/education path (cursos, matrícula).
var TrainingKeywords = []string{
	"curso", "formacion", "preinscripcion", "matricula", "admision",
	"master", "grado", "fp ", "estudiar",
}

// LaborEvidenceKeywords signal provable labor-relationship evidence, the
// gate for the sociolaboral rootedness path.
var LaborEvidenceKeywords = []string{
	"denuncia", "inspeccion", "sentencia", "nomina", "conciliacion",
	"acta de inspeccion",
}

// RemoteWorkKeywords signal digital-nomad style remote work.
var RemoteWorkKeywords = []string{
	"remoto", "remota", "teletrabajo", "freelance", "nomada",
}

// InvestmentKeywords signal investor-residency intent. Amount patterns are
// handled separately by hasLargeAmount.
var InvestmentKeywords = []string{
	"inversor", "inversion", "invertir", "golden visa",
}

// HighlyQualifiedKeywords signal a qualified job offer.
var HighlyQualifiedKeywords = []string{
	"altamente cualificado", "director", "directora", "directiva",
	"puesto directivo", "oferta cualificada",
}

// NoOfferKeywords explicitly negate a qualified-offer signal.
var NoOfferKeywords = []string{"sin oferta"}

// EntrepreneurKeywords signal self-employment/startup intent.
var EntrepreneurKeywords = []string{
	"emprend", "startup", "negocio", "cuenta propia", "autonomo",
}

// AscendantKeywords signal a dependent-ascendant family bond.
var AscendantKeywords = []string{
	"ascendiente", "a cargo", "mis padres", "mi madre", "mi padre",
}

// PaymentKeywords signal an administrative payment request. Matched on word
// boundaries, not substrings: several entries are prefixes of unrelated
// vocabulary (facturacion, tasacion).
var PaymentKeywords = []string{
	"pago", "pagos", "pagar", "abonar", "factura", "facturas",
	"transferencia", "tasa", "tasas",
}

// SchedulingKeywords signal an appointment/scheduling request. Entries are
// phrases rather than the bare word "cita" because that substring appears
// inside unrelated words (capacitacion).
var SchedulingKeywords = []string{
	"agendar", "cita previa", "una cita", "pedir cita", "reservar hora", "agenda",
}

// RegistryKeywords signal civil-registry/genealogy document searches.
var RegistryKeywords = []string{
	"acta", "partida", "registro civil", "certificado de nacimiento",
}

// HomologationKeywords signal foreign-title recognition.
var HomologationKeywords = []string{
	"homologa", "convalida", "titulo extranjero", "reconocimiento del titulo",
}

// AppealKeywords signal contentious appeals against denials.
var AppealKeywords = []string{
	"recurso", "denega", "contencioso", "recurrir",
}

// PendingKeywords signal a residency application already in progress.
// Phrases only: the bare word "tramite" also appears in questions about
// which procedures exist (que tramites debo hacer), which is not a pending
// application.
var PendingKeywords = []string{
	"en tramite", "pendiente", "resguardo", "esperando la tarjeta",
}

// WorkKeywords signal wanting/needing to work.
var WorkKeywords = []string{
	"trabajar", "trabajo", "empleo", "contrato",
}

// RegroupKeywords signal family reunification intent.
var RegroupKeywords = []string{"reagrup"}

// Nationality sub-intent keywords.
var (
	MarriageNationalityKeywords = []string{"matrimonio", "casado", "casada", "conyuge"}
	SurnameNationalityKeywords  = []string{"apellido", "sefard"}
	MemoryLawKeywords           = []string{"memoria democratica", "memoria historica", "lmd", "abuelo espanol", "abuela espanola"}
	NationalityKeywords         = []string{"nacionalidad"}
)

// Student sub-procedure keywords. The student branch has many narrow,
// mutually distinguishable procedures; these pick the specific one.
var (
	StudentFamilyKeywords      = []string{"familiar de estudiante", "familiares de estudiante", "traer a mi"}
	EmployedSwitchKeywords     = []string{"cuenta ajena", "oferta de contrato", "contrato firmado", "oferta de trabajo"}
	SelfEmployedSwitchKeywords = []string{"cuenta propia", "autonomo"}
	PostStudiesKeywords        = []string{"despues de estudios", "termine", "he terminado", "busqueda de empleo"}
	StudyRenewalKeywords       = []string{"renovar", "renovacion", "prorroga", "vence", "caduca"}
	StudentDenialKeywords      = []string{"error en la resolucion", "denega", "resolucion desfavorable"}
)

// StudyIntentKeywords signal a study goal in free text.
var StudyIntentKeywords = []string{"estudiar", "estudios", "visado de estudiante"}

// TouristEntryKeywords signal plain visit/entry intent from origin.
var TouristEntryKeywords = []string{
	"entrar como turista", "carta de invitacion", "visado de turista", "visitar",
}

// Advisory markers route straight to human-advisory templates.
var AdvisoryMarkerKeywords = []string{
	"remitir a julia", "cuenta brevemente",
}

// HedgingKeywords mark exploratory, no-concrete-plan language.
var HedgingKeywords = []string{
	"no se ", "no estoy segur", "quizas", "tal vez", "opciones",
	"informacion", "orientacion", "que puedo hacer", "que puedo tramitar",
}

// ConcretePlanKeywords are the nouns whose presence defeats the exploratory
// heuristic.
var ConcretePlanKeywords = []string{
	"oferta", "contrato", "matricula", "admision", "preinscripcion",
}
