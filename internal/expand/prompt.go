package expand

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julialegal/brujula/internal/model"
)

// buildPrompt renders the discard-logic prompt. The reviewer is framed as an
// admission judge that actively looks for reasons to deny: a profile that
// survives every discard rule is VIABLE, everything else is NO_VIABLE or
// REVISION_MANUAL. The allowed template list is the classification's
// candidate set, so the reviewer can only pick within the engine's narrowing.
func buildPrompt(profile *model.Profile, allowed []string) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	var b strings.Builder
	b.WriteString("ROL: Eres un JUEZ DE ADMISIÓN de trámites de extranjería (Validador Lógico).\n")
	b.WriteString("TU TAREA: Determinar si el perfil CUMPLE (VIABLE) o NO CUMPLE (NO_VIABLE) con los requisitos legales estrictos.\n\n")
	b.WriteString("OBJETIVO: Aplicar lógica de \"DESCARTE\". Busca activamente razones para denegar. Si pasa todos los filtros, entonces es VIABLE.\n\n")

	b.WriteString("INPUTS DEL CIUDADANO:\n")
	b.Write(profileJSON)
	b.WriteString("\n\n")

	b.WriteString("OPCIONES DE TRÁMITE POSIBLES (Solo si es VIABLE):\n")
	b.WriteString(strings.Join(allowed, ", "))
	b.WriteString("\n\n---\n")

	b.WriteString(`REGLAS DE DESCARTE (SI SE CUMPLE UNA, EL VEREDICTO ES "NO_VIABLE"):

1. REGLA DE UBICACIÓN (ORIGEN):
   - Si locationStatus == "origin" Y el usuario pide "Arraigo" -> NO_VIABLE (Razón: Los arraigos requieren estar en España).
   - Si locationStatus == "origin" Y no tiene ingresos altos, ni oferta cualificada, ni familiar UE -> REVISION_MANUAL (Posible falta de vías).

2. REGLA DEL TIEMPO (IRREGULARIDAD):
   - Si currentStatus == "irregular" Y timeInSpain < 2 años:
     * ¿Tiene hijo español? -> VIABLE (Arraigo Familiar).
     * ¿Tiene pareja registrada española/UE? -> VIABLE (Familiar UE).
     * ¿Pide Asilo? -> VIABLE (Asilo).
     * SI NO CUMPLE LO ANTERIOR -> NO_VIABLE (Razón: No cumple tiempo mínimo para Arraigos Sociales/Laborales/Formación).

   - Si currentStatus == "irregular" Y timeInSpain >= 2 años y < 3 años:
     * Solo es VIABLE para "ARRAIGO SOCIOFORMATIVO" o "ARRAIGO SOCIOLABORAL" (si tiene oferta).
     * Si pide "Arraigo Social" -> NO_VIABLE (Requiere 3 años).

3. REGLA DE ANTECEDENTES:
   - Si hasCriminalRecord == true -> REVISION_MANUAL (Bloqueante para la mayoría, pero requiere análisis humano).

4. REGLA DE FAMILIA:
   - Si dice tener familia UE pero NO aporta detalles ni prueba de vínculo en 'familyDetails' -> REVISION_MANUAL.

---
INSTRUCCIONES PARA EL VEREDICTO FINAL:

- **VIABLE**: El usuario cumple los requisitos de tiempo, ubicación y vínculo para UNA de las plantillas de la lista. Asigna esa plantilla en 'assignedTemplate'.
- **NO_VIABLE**: El usuario incumple una regla dura (tiempo insuficiente, ubicación incorrecta). Asigna "NINGUNA" a 'assignedTemplate' y explica la razón en 'rejectionReason'.
- **REVISION_MANUAL**: El caso es ambiguo, contradictorio o faltan datos críticos.

IMPORTANTE: No inventes. Es binario. Se puede o no se puede.

SALIDA ESPERADA (JSON):
Responde solo con un objeto JSON con las claves: verdict ("VIABLE" | "NO_VIABLE" | "REVISION_MANUAL"), rejectionReason, summary, assignedTemplate, missingInfoWarning.
`)

	return b.String(), nil
}
