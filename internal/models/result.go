package models

type AnalyzeResponse struct {
	ID         string          `json:"id"`
	TargetRole string          `json:"target_role"`
	Analysis   *ResumeAnalysis `json:"analysis"`
	Report     string          `json:"report"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
