// Package golden evaluates the classification engine against a curated
// scenario suite mirroring real intake-form submissions.
package golden

import "github.com/julialegal/brujula/internal/model"

// Case is one golden scenario: a realistic profile plus the flow and the
// candidate keys the engine must produce for it.
type Case struct {
	ID           string
	Name         string
	Tags         []string
	Profile      *model.Profile
	ExpectedFlow model.FlowCategory
	MustInclude  []string
}

func boolPtr(b bool) *bool { return &b }

// base mirrors the intake form's typical submission; scenarios override what
// distinguishes them.
func base(override func(*model.Profile)) *model.Profile {
	p := &model.Profile{
		FirstName:         "Test",
		LastName:          "User",
		Nationality:       "Argentina",
		Age:               30,
		EducationLevel:    model.EducationSecondary,
		CurrentStatus:     model.StatusIrregular,
		TimeInSpain:       model.TimeSixToTwelveMonths,
		EntryDate:         "2024-03-01",
		Province:          "Madrid",
		LocationStatus:    model.LocationSpain,
		IsEmpadronado:     boolPtr(true),
		JobSituation:      "trabajo informal",
		HasCriminalRecord: boolPtr(false),
		HasFamilyInSpain:  boolPtr(false),
		PrimaryGoal:       "regularizar",
	}
	if override != nil {
		override(p)
	}
	return p
}

// Cases returns the full scenario suite. At least two variants per main
// template, oriented to the real form flow.
func Cases() []Case {
	return []Case{
		// Arraigos.
		{
			ID:   "arraigo-social-1",
			Name: "Irregular 3.5 años empadronado, trabajo informal",
			Tags: []string{"form", "arraigos", "core"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeMoreThanThreeYears
				p.JobSituation = "hostelería sin contrato"
				p.Comments = "[objetivo:regularizar] Llevo más de 3 años en España, siempre empadronado. Trabajo sin contrato y quiero regularizarme."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIAL"},
		},
		{
			ID:   "arraigo-social-2",
			Name: "Irregular 3 años, con oferta firmada",
			Tags: []string{"form", "arraigos"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeMoreThanThreeYears
				p.JobSituation = "oferta de contrato en restaurante"
				p.Comments = "[objetivo:regularizar] Tengo oferta de contrato y 3 años empadronado."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIAL"},
		},
		{
			ID:   "arraigo-sociolaboral-1",
			Name: "Irregular 2.5 años con denuncia laboral",
			Tags: []string{"form", "arraigos", "core"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.JobSituation = "construcción, denuncia laboral presentada"
				p.Comments = "[objetivo:regularizar] Llevo 2 años y medio, trabajé sin contrato y ya tengo denuncia en inspección."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIOLABORAL"},
		},
		{
			ID:   "arraigo-sociolaboral-2",
			Name: "Irregular 2 años, sentencia a favor",
			Tags: []string{"form", "arraigos"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.JobSituation = "limpieza, sentencia laboral favorable"
				p.Comments = "[objetivo:regularizar] Tengo sentencia laboral a favor por despido sin papeles."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIOLABORAL"},
		},
		{
			ID:   "arraigo-socioformativo-1",
			Name: "Irregular 2+ años con preinscripción 600h",
			Tags: []string{"form", "arraigos", "core"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.JobSituation = "trabajos puntuales y curso de 600h"
				p.Comments = "[objetivo:regularizar] Llevo más de 2 años en España y tengo preinscripción en un curso de 600h para formarme."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIOFORMATIVO"},
		},
		{
			ID:   "arraigo-socioformativo-2",
			Name: "Irregular 2.2 años, FP superior confirmado",
			Tags: []string{"form", "arraigos"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.JobSituation = "trabajos esporádicos, listo para estudiar"
				p.Comments = "[objetivo:regularizar] Tengo admisión a un FP superior de 2000h y llevo más de 2 años aquí."
			}),
			ExpectedFlow: model.FlowArraigos,
			MustInclude:  []string{"ARRAIGO SOCIOFORMATIVO"},
		},

		// Familia / UE.
		{
			ID:   "arraigo-familiar-hijo-1",
			Name: "Padre/madre de hijo español",
			Tags: []string{"form", "familia", "core"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeOneToTwoYears
				p.HasFamilyInSpain = boolPtr(true)
				p.FamilyNationality = model.FamilySpanishEU
				p.FamilyRelation = model.RelationParentOfSpanish
				p.FamilyDetails = "Hijo español de 2 años, convivimos en Madrid."
				p.Comments = "[objetivo:regularizar] Estoy irregular, convivo con mi hijo español y necesito residencia para cuidarlo."
			}),
			ExpectedFlow: model.FlowFamilyOfEU,
			MustInclude:  []string{"ARRAIGO FAMILIAR", "HIJO DE ESPAÑOL DE ORIGEN"},
		},
		{
			ID:   "arraigo-familiar-hijo-2",
			Name: "Madre irregular, hijo español recién nacido",
			Tags: []string{"form", "familia"},
			Profile: base(func(p *model.Profile) {
				p.HasFamilyInSpain = boolPtr(true)
				p.FamilyNationality = model.FamilySpanishEU
				p.FamilyRelation = model.RelationParentOfSpanish
				p.FamilyDetails = "Bebé español de 4 meses, dependencia económica total."
				p.Comments = "[objetivo:regularizar] Llegué hace 6 meses, mi bebé nació en España, necesito residencia."
			}),
			ExpectedFlow: model.FlowFamilyOfEU,
			MustInclude:  []string{"ARRAIGO FAMILIAR", "HIJO DE ESPAÑOL DE ORIGEN"},
		},
		{
			ID:   "familiar-ue-pareja-1",
			Name: "Pareja no registrada de español/UE",
			Tags: []string{"form", "familia", "core"},
			Profile: base(func(p *model.Profile) {
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.HasFamilyInSpain = boolPtr(true)
				p.FamilyNationality = model.FamilySpanishEU
				p.FamilyRelation = model.RelationUnregisteredPartner
				p.FamilyDetails = "Convivo desde hace 2 años con mi pareja española, empadronados juntos."
				p.Comments = "[objetivo:regularizar] Queremos tramitar la tarjeta de familiar de ciudadano de la UE."
			}),
			ExpectedFlow: model.FlowFamilyOfEU,
			MustInclude:  []string{"FAMILIAR UE 2025", "PAREJA DE HECHO"},
		},
		{
			ID:   "familiar-ue-pareja-2",
			Name: "Cónyuge español, recién casados",
			Tags: []string{"form", "familia"},
			Profile: base(func(p *model.Profile) {
				p.HasFamilyInSpain = boolPtr(true)
				p.FamilyNationality = model.FamilySpanishEU
				p.FamilyRelation = model.RelationSpouse
				p.FamilyDetails = "Casados hace 3 meses, convivencia acreditada."
				p.Comments = "[objetivo:regularizar] Estamos casados y convivimos, quiero la tarjeta de familiar UE."
			}),
			ExpectedFlow: model.FlowFamilyOfEU,
			MustInclude:  []string{"FAMILIAR UE 2025"},
		},
		{
			ID:   "reagrupacion-familiar-1",
			Name: "Residente reagrupar cónyuge e hijos",
			Tags: []string{"form", "familia", "core"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusResident
				p.TimeInSpain = model.TimeMoreThanThreeYears
				p.JobSituation = "contrato indefinido"
				p.PrimaryGoal = "familiares"
				p.Comments = "[objetivo:familiares] Tengo residencia y contrato indefinido, quiero reagrupar a mi cónyuge e hijos en origen."
			}),
			ExpectedFlow: model.FlowResident,
			MustInclude:  []string{"REAGRUPACIÓN FAMILIAR"},
		},
		{
			ID:   "reagrupacion-familiar-2",
			Name: "Residente reagrupar padres mayores",
			Tags: []string{"form", "familia"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusResident
				p.TimeInSpain = model.TimeMoreThanThreeYears
				p.JobSituation = "contrato indefinido"
				p.Comments = "[objetivo:familiares] Llevo 5 años con residencia y quiero reagrupar a mis padres de 70 años."
			}),
			ExpectedFlow: model.FlowResident,
			MustInclude:  []string{"REAGRUPACIÓN FAMILIAR"},
		},
		{
			ID:   "nacionalidad-matrimonio-1",
			Name: "Residente casado con española (1+ año)",
			Tags: []string{"form", "nacionalidad", "core"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusResident
				p.TimeInSpain = model.TimeOneToTwoYears
				p.HasFamilyInSpain = boolPtr(true)
				p.FamilyNationality = model.FamilySpanishEU
				p.FamilyRelation = model.RelationSpouse
				p.PrimaryGoal = "nacionalidad"
				p.Comments = "[objetivo:nacionalidad] Casado con española hace más de un año, convivimos y quiero tramitar la nacionalidad."
			}),
			ExpectedFlow: model.FlowFamilyOfEU,
			MustInclude:  []string{"NACIONALIDAD POR MATRIMONIO", "NACIONALIDAD 2024"},
		},
		{
			ID:   "nacionalidad-residencia-2",
			Name: "Latinoamericana 2 años residente legal",
			Tags: []string{"form", "nacionalidad"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusResident
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.PrimaryGoal = "nacionalidad"
				p.Comments = "[objetivo:nacionalidad] Soy de país iberoamericano, llevo 2 años de residencia legal y quiero nacionalidad."
			}),
			ExpectedFlow: model.FlowResident,
			MustInclude:  []string{"NACIONALIDAD 2024"},
		},

		// Estudios.
		{
			ID:   "estudiar-desde-origen-1",
			Name: "Visado de estudios máster desde origen",
			Tags: []string{"form", "estudios", "core"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.TimeInSpain = model.TimeLessThanSixMonths
				p.IsEmpadronado = boolPtr(false)
				p.PrimaryGoal = "entrada"
				p.Comments = "[objetivo:entrada] Tengo admisión a un máster y seguro médico, quiero visado de estudiante."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"ESTUDIAR EN ESPAÑA"},
		},
		{
			ID:   "estudiar-desde-origen-2",
			Name: "Preinscripción FP desde origen",
			Tags: []string{"form", "estudios"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.TimeInSpain = model.TimeLessThanSixMonths
				p.IsEmpadronado = boolPtr(false)
				p.PrimaryGoal = "entrada"
				p.Comments = "[objetivo:entrada] Preinscripción a un FP de grado superior en España, necesito el visado."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"ESTUDIAR EN ESPAÑA"},
		},
		{
			ID:   "modificar-estudios-a-ajena-1",
			Name: "Estudiante con oferta de trabajo",
			Tags: []string{"form", "estudios", "core"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusStudent
				p.TimeInSpain = model.TimeTwoToThreeYears
				p.JobSituation = "oferta de contrato full-time"
				p.Comments = "[objetivo:regularizar] Estudio un grado y tengo oferta de contrato. Quiero modificar a cuenta ajena."
			}),
			ExpectedFlow: model.FlowStudent,
			MustInclude:  []string{"MODIFICAR DE ESTUDIOS A CUENTA AJENA"},
		},
		{
			ID:   "modificar-estudios-a-ajena-2",
			Name: "Graduada máster con contrato firmado",
			Tags: []string{"form", "estudios"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusStudent
				p.TimeInSpain = model.TimeMoreThanThreeYears
				p.JobSituation = "contrato firmado como ingeniera"
				p.Comments = "[objetivo:regularizar] Terminé máster y tengo contrato firmado, quiero cambiar a cuenta ajena."
			}),
			ExpectedFlow: model.FlowStudent,
			MustInclude:  []string{"MODIFICAR DE ESTUDIOS A CUENTA AJENA"},
		},
		{
			ID:   "renovacion-estudiante-1",
			Name: "Renovación tarjeta estudiante grado",
			Tags: []string{"form", "estudios", "core"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusStudent
				p.TimeInSpain = model.TimeOneToTwoYears
				p.JobSituation = "estudiante con trabajo parcial"
				p.Comments = "[objetivo:regularizar] Mi tarjeta de estudiante vence pronto y sigo matriculado, necesito renovar."
			}),
			ExpectedFlow: model.FlowStudent,
			MustInclude:  []string{"RENOVACIÓN DE ESTUDIOS"},
		},
		{
			ID:   "renovacion-estudiante-2",
			Name: "Renovación FP con prácticas",
			Tags: []string{"form", "estudios"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusStudent
				p.TimeInSpain = model.TimeOneToTwoYears
				p.JobSituation = "prácticas remuneradas 20h"
				p.Comments = "[objetivo:regularizar] Estoy en FP y tengo prácticas, necesito prórroga de estudios."
			}),
			ExpectedFlow: model.FlowStudent,
			MustInclude:  []string{"RENOVACIÓN DE ESTUDIOS"},
		},

		// Trabajo desde origen.
		{
			ID:   "hq-worker-1",
			Name: "Profesional altamente cualificado 70k",
			Tags: []string{"form", "trabajo", "core"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.TimeInSpain = model.TimeLessThanSixMonths
				p.IsEmpadronado = boolPtr(false)
				p.JobSituation = "oferta de multinacional 70.000€ director de tecnología"
				p.Comments = "[objetivo:entrada] Oferta cualificada en España y quiero ir con mi familia."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO"},
		},
		{
			ID:   "hq-worker-2",
			Name: "Directiva financiera 90k con familia",
			Tags: []string{"form", "trabajo"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.JobSituation = "directora financiera, salario 90k, oferta en Madrid"
				p.Comments = "[objetivo:entrada] Oferta como directiva en multinacional, quiero llevar a mi cónyuge e hijos."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO"},
		},
		{
			ID:   "investor-1",
			Name: "Compra vivienda 650k",
			Tags: []string{"form", "trabajo", "core"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.IsEmpadronado = boolPtr(false)
				p.JobSituation = "inversión inmobiliaria 650000€"
				p.Comments = "[objetivo:entrada] Quiero invertir 650.000€ en una vivienda en Madrid y obtener residencia como inversor."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"RESIDENCIA PARA INVERSORES"},
		},
		{
			ID:   "investor-2",
			Name: "Bono público 1M€",
			Tags: []string{"form", "trabajo"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.IsEmpadronado = boolPtr(false)
				p.JobSituation = "compra de bonos públicos 1.000.000€"
				p.Comments = "[objetivo:entrada] Invertiré 1 millón de euros en bonos del Estado español y quiero la residencia de inversor."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"RESIDENCIA PARA INVERSORES"},
		},
		{
			ID:   "nomada-digital-1",
			Name: "Trabajo remoto con contrato extranjero",
			Tags: []string{"form", "trabajo", "core"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.IsEmpadronado = boolPtr(false)
				p.JobSituation = "empleada remota con contrato extranjero y salario 3200€"
				p.Comments = "[objetivo:entrada] Trabajo en remoto para empresa de EEUU y quiero vivir en España como nómada digital."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"NÓMADA DIGITAL"},
		},
		{
			ID:   "nomada-digital-2",
			Name: "Freelance facturación 4k remoto",
			Tags: []string{"form", "trabajo"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.IsEmpadronado = boolPtr(false)
				p.JobSituation = "freelance IT facturación 4000€ mensuales"
				p.Comments = "[objetivo:entrada] Trabajo freelance remoto con clientes en Europa, quiero ir como nómada digital."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"NÓMADA DIGITAL"},
		},
		{
			ID:   "emprender-1",
			Name: "Plan de negocio cafetería",
			Tags: []string{"form", "trabajo", "core"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.JobSituation = "plan de negocio de cafetería en Valencia"
				p.Comments = "[objetivo:entrada] Tengo plan de negocio y capital para abrir una cafetería en Valencia."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"EMPRENDER EN ESPAÑA"},
		},
		{
			ID:   "emprender-2",
			Name: "Startup tecnológica con inversión semilla",
			Tags: []string{"form", "trabajo"},
			Profile: base(func(p *model.Profile) {
				p.LocationStatus = model.LocationOrigin
				p.CurrentStatus = model.StatusOther
				p.JobSituation = "startup IA con inversión semilla 150k"
				p.Comments = "[objetivo:entrada] Tengo inversión semilla y plan de negocio para lanzar una startup en Barcelona."
			}),
			ExpectedFlow: model.FlowOutsideSpain,
			MustInclude:  []string{"EMPRENDER EN ESPAÑA"},
		},

		// Protección.
		{
			ID:   "asilo-1",
			Name: "Solicitante de asilo político",
			Tags: []string{"form", "proteccion", "core"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusAsylum
				p.TimeInSpain = model.TimeLessThanSixMonths
				p.JobSituation = "sin empleo"
				p.PrimaryGoal = "proteccion"
				p.Comments = "Salí de mi país por persecución política y quiero orientación sobre asilo."
			}),
			ExpectedFlow: model.FlowAsylum,
			MustInclude:  []string{"ASILO"},
		},
		{
			ID:   "asilo-2",
			Name: "Asilo por persecución LGTBI",
			Tags: []string{"form", "proteccion"},
			Profile: base(func(p *model.Profile) {
				p.CurrentStatus = model.StatusAsylum
				p.JobSituation = "sin empleo"
				p.PrimaryGoal = "proteccion"
				p.Comments = "Persecución LGTBI en mi país, temo por mi seguridad y busco asilo en España."
			}),
			ExpectedFlow: model.FlowAsylum,
			MustInclude:  []string{"ASILO"},
		},
	}
}
