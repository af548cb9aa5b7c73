package ai

import "strings"

// Tone values recognised by the prompt builder. Anything else falls back to
// the formal instruction.
const (
	ToneFormal       = "formal"
	ToneFriendly     = "friendly"
	ToneMotivational = "motivational"
)

func toneInstruction(tone string) string {
	switch tone {
	case ToneFriendly:
		return "Your feedback summary and improvement tips should be written in a friendly, encouraging, and supportive tone. Use positive language."
	case ToneMotivational:
		return "Your feedback summary and improvement tips should be highly motivational and inspiring. Focus on the student's potential for growth and excellence."
	default:
		return "Your feedback summary and improvement tips should be formal, objective, and professional, suitable for an academic setting."
	}
}

// BuildPrompt renders the three extracted documents, the paper title, and the
// tone instruction into the single grading instruction sent to the model. The
// model is told to reply with one JSON object and nothing else.
func BuildPrompt(input GradeInput) string {
	b := strings.Builder{}
	b.WriteString("You are an expert AI teacher's assistant. Your task is to evaluate a student's answer sheet with high accuracy by cross-referencing it with the question paper and the model answer key.\n")
	b.WriteString("The student's submission is for a paper titled \"")
	b.WriteString(input.Filename)
	b.WriteString("\".\n")
	b.WriteString("You have been provided with three documents:\n")
	b.WriteString("1. The Question Paper\n")
	b.WriteString("2. The Model Answer Key\n")
	b.WriteString("3. The Student's Answer Sheet\n")
	b.WriteString("--- QUESTION PAPER ---\n")
	b.WriteString(input.QuestionPaperText)
	b.WriteString("\n--- END OF QUESTION PAPER ---\n")
	b.WriteString("--- MODEL ANSWER KEY ---\n")
	b.WriteString(input.AnswerKeyText)
	b.WriteString("\n--- END OF MODEL ANSWER KEY ---\n")
	b.WriteString("--- STUDENT'S ANSWER SHEET ---\n")
	b.WriteString(input.StudentAnswerText)
	b.WriteString("\n--- END OF STUDENT'S ANSWER SHEET ---\n")
	b.WriteString("Please perform the following tasks with precision:\n")
	b.WriteString("1. **Analyze and Correlate**: Read the Question Paper to understand the questions. Read the Student's Answer Sheet to find their answers. Use the Model Answer Key as the ground truth for evaluation.\n")
	b.WriteString("2. **Evaluate Each Question**: For each question from the question paper, compare the student's corresponding answer with the model answer.\n")
	b.WriteString("3. **Score**: Assign a total score out of 100 for the entire paper based on the correctness of all answers.\n")
	b.WriteString("4. **Summarize and Suggest Improvements**: Provide a concise, constructive overall feedback summary and 3-5 specific, actionable improvement tips. ")
	b.WriteString(toneInstruction(input.Tone))
	b.WriteString("\n")
	b.WriteString("Your response MUST be a single, valid JSON object. Do not include any text or markdown formatting outside of the JSON object.\n")
	b.WriteString("The JSON object must follow this exact structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"studentName\": \"Anonymous Student\",\n")
	b.WriteString("  \"paperTitle\": \"")
	b.WriteString(input.Filename)
	b.WriteString("\",\n")
	b.WriteString("  \"score\": <integer, 0-100>,\n")
	b.WriteString("  \"feedbackSummary\": \"<string, overall feedback>\",\n")
	b.WriteString("  \"improvementTips\": [\n")
	b.WriteString("    \"<string, tip 1>\",\n")
	b.WriteString("    \"<string, tip 2>\",\n")
	b.WriteString("    \"<string, tip 3>\"\n")
	b.WriteString("  ],\n")
	b.WriteString("  \"questions\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"id\": 1,\n")
	b.WriteString("      \"question\": \"<string, question 1 from the question paper>\",\n")
	b.WriteString("      \"studentAnswer\": \"<string, student's answer to question 1>\",\n")
	b.WriteString("      \"modelAnswer\": \"<string, model answer for question 1 from the answer key>\",\n")
	b.WriteString("      \"evaluation\": \"<'Correct' | 'Incorrect' | 'Partial'>\",\n")
	b.WriteString("      \"score\": \"<string, e.g., '8/10'>\",\n")
	b.WriteString("      \"reasoning\": \"<string, brief explanation for the evaluation, comparing student's answer to the model answer>\"\n")
	b.WriteString("    }\n")
	b.WriteString("  ]\n")
	b.WriteString("}\n")
	b.WriteString("Ensure all fields are populated accurately based on the provided documents.")
	return b.String()
}
