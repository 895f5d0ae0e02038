// Package payment holds the shop's ways to pay.
//
// CardAdapter puts the shop's Pay(amount) call shape in front of a card
// processor that speaks tokens and minor units. It is silent on standard
// output; the processor's receipts are the only record of the charge.
//
// CreditCard and BankTransfer are interchangeable strategies that print a
// confirmation line. Which one runs is the caller's choice.
package payment
