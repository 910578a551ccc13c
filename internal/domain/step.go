package domain

// WizardStep is one step of the linear configurator flow.
type WizardStep int

const (
	StepLocation WizardStep = iota
	StepServiceSelection
	StepDetails
	StepScheduling
	StepCustomerInfo
)

// FirstStep is the initial state of every configurator session.
const FirstStep = StepLocation

// LastStep is the final step before submission.
const LastStep = StepCustomerInfo

// String returns the wire name of the step.
func (s WizardStep) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepServiceSelection:
		return "service_selection"
	case StepDetails:
		return "details"
	case StepScheduling:
		return "scheduling"
	case StepCustomerInfo:
		return "customer_info"
	default:
		return "unknown"
	}
}

// Next returns the following step. Calling Next on the last step returns it unchanged.
func (s WizardStep) Next() WizardStep {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

// Prev returns the preceding step. Calling Prev on the first step returns it unchanged.
func (s WizardStep) Prev() WizardStep {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}

// IsFirst reports whether this is the initial step.
func (s WizardStep) IsFirst() bool {
	return s == FirstStep
}

// IsLast reports whether this is the final step.
func (s WizardStep) IsLast() bool {
	return s == LastStep
}

// AllSteps lists every step in flow order. Used for the cumulative submit check.
var AllSteps = []WizardStep{
	StepLocation,
	StepServiceSelection,
	StepDetails,
	StepScheduling,
	StepCustomerInfo,
}
