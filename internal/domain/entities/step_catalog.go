package entities

// EarnestMoneyStepLabel is the milestone the earnest-deposit flow completes.
const EarnestMoneyStepLabel = "Earnest Money Deposited"

// CatalogEntry is one default milestone in the closing checklist.

type CatalogEntry struct {
	Label        string
	Order        int
	AssignedTo   StepAssignee
	PreCompleted bool
}

// DefaultStepCatalog is the fixed milestone sequence instantiated for a deal
// the first time its steps are requested. Order and assignee values are part
// of the external contract (the UI keys ownership badges off them), so they
// must not be reshuffled.
var DefaultStepCatalog = []CatalogEntry{
	{Label: "Offer Accepted", Order: 1, AssignedTo: StepAssigneeSystem, PreCompleted: true},
	{Label: EarnestMoneyStepLabel, Order: 2, AssignedTo: StepAssigneeInvestor},
	{Label: "Title Search Ordered", Order: 3, AssignedTo: StepAssigneeAgent},
	{Label: "Property Inspection", Order: 4, AssignedTo: StepAssigneeInvestor},
	{Label: "Appraisal", Order: 5, AssignedTo: StepAssigneeAgent},
	{Label: "Final Walkthrough", Order: 6, AssignedTo: StepAssigneeInvestor},
	{Label: "Closing Documents Signed", Order: 7, AssignedTo: StepAssigneeSeller},
	{Label: "Funds Transferred", Order: 8, AssignedTo: StepAssigneeInvestor},
	{Label: "Keys Handed Over", Order: 9, AssignedTo: StepAssigneeAgent},
}
