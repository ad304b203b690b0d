package billing

import (
	"strconv"
	"strings"

	"github.com/coffai/pos/internal/money"
)

// Summarize renders the templated order summary for a bill. The output is a
// pure function of the bill: identical bills produce byte-identical text.
func Summarize(bill Bill) string {
	greeting := "Hello!"
	if bill.Customer.Name != "" {
		greeting = "Hello " + bill.Customer.Name + "!"
	}

	descriptions := make([]string, 0, len(bill.Items))
	for _, item := range bill.Items {
		var b strings.Builder
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteByte(' ')
		b.WriteString(item.Coffee.Name)
		if item.Milk != nil {
			b.WriteString(" with ")
			b.WriteString(item.Milk.Name)
		}
		if len(item.AddOns) > 0 {
			names := make([]string, 0, len(item.AddOns))
			for _, addOn := range item.AddOns {
				names = append(names, addOn.Name)
			}
			b.WriteString(" and ")
			b.WriteString(strings.Join(names, ", "))
		}
		descriptions = append(descriptions, b.String())
	}

	var out strings.Builder
	out.WriteString(greeting)
	out.WriteString(" You've ordered ")
	out.WriteString(strings.Join(descriptions, ", "))
	out.WriteString(". Your total is ")
	out.WriteString(money.FormatUSD(bill.Total))
	out.WriteString(". Thank you for visiting CoffAI! ☕")
	return out.String()
}
