package rules

import "github.com/docuflow/docuflow/internal/model"

// RuleSet holds the keyword and pattern rules for one category. Keywords are
// matched as case-insensitive substrings; patterns are case-insensitive
// regular expressions evaluated against the raw text. Order is significant:
// evidence is reported in rule-definition order.
type RuleSet struct {
	Category model.Category
	Keywords []string
	Patterns []string
	Weight   float64
}

// DefaultRuleSets returns the built-in classification rules for every
// category except Other, which is the fallback and has no rules.
func DefaultRuleSets() []RuleSet {
	return []RuleSet{
		{
			Category: model.CategoryInvoice,
			Keywords: []string{
				"invoice", "invoice number", "bill to", "billing",
				"amount due", "total due", "balance due", "due date",
				"subtotal", "total amount", "payment terms", "purchase order",
			},
			Patterns: []string{
				`invoice\s*#?\s*\d+`,
				`invoice\s+number\s*:?\s*\d+`,
				`invoice\s+date\s*:?\s*\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`,
				`total\s*amount\s*:?\s*\$?\d+(\.\d{2})?`,
				`amount\s*due\s*:?\s*\$?\d+(\.\d{2})?`,
				`balance\s*due\s*:?\s*\$?\d+(\.\d{2})?`,
				`payment\s*due\s*:?\s*\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`,
				`po\s*(number)?\s*:?\s*\d+`,
				`\$\d{1,3}(,\d{3})*(\.\d{2})?`,
			},
			Weight: 1.0,
		},
		{
			Category: model.CategoryResume,
			Keywords: []string{
				"resume", "curriculum vitae", "objective",
				"work experience", "professional experience", "employment history",
				"education", "qualifications", "skills", "certifications",
				"references", "linkedin", "github",
			},
			Patterns: []string{
				`curriculum\s+vitae`,
				`education\s*:?`,
				`experience\s*:?`,
				`(professional|work)\s+experience`,
				`skills\s*:?`,
				`certification[s]?\s*:?`,
				`\d{4}\s*[-–]\s*\d{4}`,
				`\d{4}\s*[-–]\s*present`,
				`bachelor|master|phd|degree`,
				`university|college|institute|school`,
				`(linkedin|github|portfolio|website)\.com/[^\s]+`,
			},
			Weight: 1.0,
		},
		{
			Category: model.CategoryContract,
			Keywords: []string{
				"contract", "agreement", "terms and conditions", "parties",
				"whereas", "hereby", "hereinafter", "witness", "signature",
				"effective date", "termination", "confidentiality",
				"non-disclosure", "governing law",
			},
			Patterns: []string{
				`this\s+(agreement|contract)\s+is\s+(made|entered\s+into)`,
				`by\s+and\s+between\s+.*?,\s+and\s+.*?`,
				`party\s+of\s+the\s+(first|second)\s+part`,
				`hereby\s+agrees?\s+to`,
				`in\s+witness\s+whereof`,
				`(effective\s+date|date\s+of\s+effect)`,
				`terms?\s+(and|&)\s+conditions`,
				`this\s+contract\s+shall\s+be\s+(governed|construed)`,
				`governed\s+by\s+the\s+laws\s+of`,
				`breach\s+of\s+contract`,
				`non[-\s]?disclosure\s+agreement`,
				`\bnda\b`,
				`confidentiality\s+clause`,
				`termination\s+clause`,
			},
			Weight: 1.0,
		},
		{
			Category: model.CategoryBankStatement,
			Keywords: []string{
				"bank statement", "account statement", "statement period",
				"account number", "opening balance", "closing balance",
				"available balance", "transaction", "deposit", "withdrawal",
				"debit", "credit", "checking account", "savings account",
			},
			Patterns: []string{
				`account\s*(number|no\.?)\s*[:\-]?\s*\d{6,}`,
				`available\s+balance\s*[:\-]?\s*\$?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`,
				`(opening|beginning)\s+balance\s*[:\-]?\s*\$?\d+(\.\d{2})?`,
				`(closing|ending)\s+balance\s*[:\-]?\s*\$?\d+(\.\d{2})?`,
				`statement\s+(period|date|from|to)\s*[:\-]?\s*\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`,
				`transaction\s+(date|details)?\s*[:\-]?`,
				`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`,
				`(debit|credit)\s+[:\-]?\s*\$?\d+(\.\d{2})?`,
				`total\s+(debits|credits)\s*[:\-]?\s*\$?\d+(\.\d{2})?`,
				`bank\s+(name|branch)?\s*[:\-]?\s*[a-zA-Z ]+`,
			},
			Weight: 1.0,
		},
	}
}
