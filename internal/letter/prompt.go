package letter

import (
	"fmt"
	"strings"
)

// CoverLetterPrompt builds the generation prompt from the extracted
// resume text, the job description, and the word budget. The triple
// quotes fence the documents so the model does not mistake resume
// content for instructions.
func CoverLetterPrompt(resumeText, jobDescription string, wordLimit int) string {
	var sb strings.Builder
	sb.WriteString("You are a professional cover letter writer. Write a compelling, personalized cover letter based on the resume and job description provided.\n\n")
	sb.WriteString("Important instructions:\n")
	sb.WriteString("The goal is to create a professional, eager-to-learn, and concise cover letter.\n")
	sb.WriteString("    The cover letter must:\n\n")
	sb.WriteString("    1. Only include the technologies and experiences mentioned in the resume.\n")
	sb.WriteString("    2. Connect the technologies in the resume with those mentioned in the job description.\n")
	sb.WriteString("    3. If there are any technologies in the job description not mentioned in the resume, politely mention that the applicant is willing and eager to learn them.\n")
	sb.WriteString("    4. Make the tone of the cover letter enthusiastic and focused on giving their best to the work.\n")
	sb.WriteString("    5. Format the cover letter to be brief, as most hiring teams prefer short and to-the-point emails.\n")
	sb.WriteString(fmt.Sprintf("    6. Use a professional tone, avoiding any casual language and use words not more than %d.\n", wordLimit))
	sb.WriteString("    7. Use Email format, including a subject line and a greeting.\n\n")
	sb.WriteString("    Include the resume and job description below and generate the cover letter formatted as an email.\n\n")
	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n\n")
	sb.WriteString("Job Description:\n\"\"\"\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\"\"\"\n\n")
	sb.WriteString("Now, write the best possible cover letter based on these.\n")
	return sb.String()
}

// PersonalizationPrompt asks the model to revise an existing letter
// according to a free-form user request.
func PersonalizationPrompt(currentLetter, userRequest string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional cover letter writer. Here is the current cover letter:\n\n")
	sb.WriteString(currentLetter)
	sb.WriteString("\n\nThe user has requested the following personalization:\n")
	sb.WriteString(userRequest)
	sb.WriteString("\n\nPlease update the cover letter accordingly, keeping it concise, short and professional.\n")
	return sb.String()
}

// CleaningPrompt asks the model to reformat raw extracted resume text.
func CleaningPrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional resume formatter. Clean and format the following resume text:\n\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\nPlease:\n")
	sb.WriteString("1. Remove any unnecessary formatting artifacts\n")
	sb.WriteString("2. Organize the content properly\n")
	sb.WriteString("3. Ensure consistency in formatting\n")
	sb.WriteString("4. Keep all important information intact\n")
	sb.WriteString("5. Make it professional and readable\n\n")
	sb.WriteString("Return only the cleaned resume text.\n")
	return sb.String()
}
