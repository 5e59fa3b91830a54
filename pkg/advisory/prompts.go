package advisory

import (
	"bytes"
	"text/template"
)

var chatAnalysisTemplate = template.Must(template.New("chat").Parse(
	`Analyze this chat screenshot for the prospect {{.Name}}.
PROVIDE A CLEAN, STRUCTURED REPORT USING EXACTLY THIS FORMAT:

📌 QUICK SUMMARY
• [Short sentence on the current context]

💡 PAIN POINTS
• [Point 1]
• [Point 2]

🎯 INTEREST LEVEL
• [Low/Medium/High] - [Short reason]

🚀 ACTIONS FOR THE CALL
• [Concrete action 1]
• [Concrete action 2]
• [Concrete action 3]

IMPORTANT: Use bullet points (•) only, no long paragraphs. Leave a blank line between sections. Be extremely concise. Answer in the language used in the chat.`))

var strategyTemplate = template.Must(template.New("strategy").Parse(
	`Act as a Senior Sales Consultant.
Build a closing strategy for: {{.Name}} (${{.Value}}).
{{- if .MainProblem}}
Main problem: {{.MainProblem}}
{{- end}}
{{- if .MonthlyRevenue}}
Monthly revenue: {{.MonthlyRevenue}}
{{- end}}

REQUIRED FORMAT:

👤 BUYER PROFILE
• [One sentence description]

🛠 NEXT STEPS
• [Step 1]
• [Step 2]
• [Step 3]

📞 SUGGESTED SCRIPT
"[A short, powerful script]"

Keep the bullet point format (•) and avoid dense blocks of text.`))

var summaryTemplate = template.Must(template.New("summary").Parse(
	`Briefly analyze this CRM lead in a single professional, direct sentence:
Name: {{.Name}}
Status: {{.Status}}
Notes: {{if .Notes}}{{.Notes}}{{else}}No notes{{end}}
Estimated value: ${{.Value}}`))

func render(t *template.Template, lead LeadContext) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, lead); err != nil {
		return "", err
	}
	return buf.String(), nil
}
