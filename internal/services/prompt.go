package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildContractAnalysisPrompt embeds the contract text into the fixed
// instruction template. The schema keys here are the contract with the
// response parser: models.Analysis mirrors them exactly.
func (pb *PromptBuilder) BuildContractAnalysisPrompt(contractText string) string {
	return fmt.Sprintf(`You are an expert contract analyzer. Your task is to analyze the following contract text and extract key insights.

The output should be a single JSON object with the following structure:
{
  "Contract Type": "The type of agreement (e.g., Service Agreement, Lease, NDA).",
  "Address": "The address mentioned in the contract.",
  "Entry Date": "The date the contract was entered into.",
  "Contract Party": "The names of the parties involved in the contract.",
  "Termination Date": "Any date or clause specifying when the contract can be terminated.",
  "End of Contract": "The specific end date or duration of the contract.",
  "Executive Summary": "A concise summary of the contract's purpose and key terms.",
  "Scope of Service": "A description of the services or work to be performed.",
  "Responsibilities for Deliverables": "A summary of each party's responsibilities and the deliverables they are accountable for.",
  "Payment Schedule": "Details on how and when payments will be made.",
  "Tax Compliance": "Any clauses related to tax responsibilities and compliance.",
  "Important Dates and Deadlines": "A list of all significant dates and deadlines mentioned in the contract.",
  "Termination Clauses": "Conditions under which the contract can be terminated by either party.",
  "Confidentiality and Non-Compete Clause": "Details of any confidentiality agreements and non-compete restrictions.",
  "Clauses Presence": {
    "Commercial": {
      "Payment Terms": "Yes/No",
      "IP": "Yes/No",
      "Delivery Time": "Yes/No",
      "Warranty": "Yes/No"
    },
    "Legal": {
      "Indemnification": "Yes/No",
      "Termination": "Yes/No",
      "Confidentiality": "Yes/No",
      "Limitation of Liability": "Yes/No"
    }
  }
}

Analyze the following contract text:
---
%s
---`, contractText)
}
