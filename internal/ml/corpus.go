package ml

import "github.com/docuflow/docuflow/internal/model"

// BundledCorpus returns the built-in synthetic training corpus: ten
// representative samples per category. It is the default corpus for lazy
// first-use training and for Retrain when no samples are supplied.
func BundledCorpus() []model.TrainingSample {
	texts := map[model.Category][]string{
		model.CategoryInvoice: {
			"Invoice number INV-2024-001 Total amount due $1,250.00 Payment terms 30 days Due date 2024-02-15",
			"Bill to customer services rendered Amount $890.50 Invoice date January 15 2024 Payment due February 14",
			"Professional services invoice Total $2,100.00 Tax $210.00 Grand total $2,310.00 Remit payment to",
			"Invoice #12345 Billing address 123 Main St Amount due $567.89 Due date 03/15/2024",
			"Statement of charges Consulting fees $1,800 Travel expenses $200 Total invoice $2,000",
			"Medical services invoice Patient billing Insurance claim Amount owed $450.00 Payment terms net 15",
			"Legal services rendered Hours 12.5 Rate $300/hour Total $3,750 Invoice date February 1 2024",
			"Product invoice Quantity 50 Unit price $25.99 Subtotal $1,299.50 Sales tax $103.96 Total $1,403.46",
			"Utility bill Electric service Account number Invoice amount $189.34 Due date March 10 2024",
			"Software licensing invoice Annual subscription $599.00 Renewal date Auto-pay enabled",
		},
		model.CategoryResume: {
			"John Smith Software Engineer Experience Python Java JavaScript Education Bachelor Computer Science Skills",
			"Marketing Manager 5 years experience Digital marketing SEO social media Bachelor Business Administration",
			"Jane Doe Registered Nurse BSN degree 3 years ICU experience CPR certified References available",
			"Data Analyst SQL Python R statistical analysis Masters Statistics University of California",
			"Project Manager PMP certified Agile Scrum methodology 8 years experience leading teams",
			"Graphic Designer Adobe Creative Suite portfolio available Bachelor Fine Arts design experience",
			"Sales Representative Territory management CRM software quota achievement Bachelor Business",
			"Mechanical Engineer AutoCAD SolidWorks PE license 6 years manufacturing experience references",
			"Teacher Elementary education Masters Education 10 years classroom experience curriculum development",
			"Financial Analyst CPA Excel modeling financial reporting Bachelor Accounting MBA Finance",
		},
		model.CategoryContract: {
			"Service Agreement This agreement entered into between parties effective date Terms and conditions",
			"Employment contract Whereas company agrees to employ Terms of employment Salary benefits",
			"Lease agreement Landlord tenant property rental Monthly rent Security deposit Lease term",
			"Purchase agreement Buyer seller property Purchase price Closing date Title insurance",
			"Software license agreement End user license Permitted use Restrictions Termination",
			"Consulting agreement Independent contractor Services provided Compensation Confidentiality",
			"Partnership agreement Business partners Profit sharing Responsibilities Dissolution terms",
			"Non-disclosure agreement Confidential information Obligations Remedies Governing law",
			"Supply agreement Vendor customer Products delivery terms Payment Warranty",
			"Distribution agreement Distributor Territory Minimum sales Termination Marketing support",
		},
		model.CategoryBankStatement: {
			"Bank statement Account number 123456789 Beginning balance $5,000.00 Ending balance $4,500.00",
			"Checking account Statement period January 1-31 2024 Deposits $2,000 Withdrawals $1,500",
			"Savings account Interest earned $12.50 Balance forward $10,000 Current balance $10,012.50",
			"Account summary Transaction history Debit credit Balance Available funds Overdraft protection",
			"Monthly statement Direct deposit Automatic payments ATM transactions Check clearing",
			"Credit card statement Previous balance $1,500 Payments $500 New charges $750 Current balance",
			"Business checking statement Deposits $15,000 Business expenses $12,500 Service charges $25",
			"Investment account statement Portfolio value Securities transactions Dividends Market value",
			"Money market account Statement date Balance Minimum balance Interest rate Annual percentage yield",
			"Student loan statement Principal balance Interest accrued Monthly payment Payoff date",
		},
		model.CategoryOther: {
			"Research paper Abstract methodology Results conclusions References bibliography",
			"Meeting minutes Attendees agenda items Action items Next meeting scheduled",
			"User manual Installation instructions Configuration Settings troubleshooting Support contact",
			"Policy document Company procedures Guidelines compliance Training requirements",
			"Technical specification Requirements architecture Design implementation Testing",
			"Marketing brochure Product features Benefits customer testimonials Contact information",
			"Press release Company announcement News media Distribution Public relations",
			"Training materials Course outline Learning objectives Exercises Assessment criteria",
			"Incident report Date time Location Description Witnesses Actions taken Follow-up",
			"Performance review Employee evaluation Goals achievements Areas improvement Development plan",
		},
	}

	samples := make([]model.TrainingSample, 0, 50)
	for _, category := range model.Categories() {
		for _, text := range texts[category] {
			samples = append(samples, model.TrainingSample{Text: text, Label: category})
		}
	}
	return samples
}
