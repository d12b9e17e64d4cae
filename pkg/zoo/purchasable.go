package zoo

import (
	"fmt"
	"io"
)

// Purchasable has no mandatory requirements. Implementations may also
// satisfy Discounter and Purchaser, which Checkout discovers at runtime.
type Purchasable interface {
	Price() float64
}

type Discounter interface {
	Discount() float64
}

type Purchaser interface {
	Purchase(w io.Writer) error
}

// Checkout returns the price after any discount and completes the purchase
// if the item knows how to
func Checkout(w io.Writer, item Purchasable) (float64, error) {
	price := item.Price()

	if d, ok := item.(Discounter); ok {
		price = price * (1 - d.Discount())
	}

	if p, ok := item.(Purchaser); ok {
		if err := p.Purchase(w); err != nil {
			return 0, fmt.Errorf("purchase failed: %w", err)
		}
	}

	return price, nil
}

type Ticket struct {
	Amount float64
}

func (t Ticket) Price() float64 { return t.Amount }

type SaleTicket struct {
	Ticket
	Rebate float64
}

func (s SaleTicket) Discount() float64 { return s.Rebate }

func (s SaleTicket) Purchase(w io.Writer) error {
	_, err := fmt.Fprintf(w, "purchased ticket for %.2f\n", s.Amount*(1-s.Rebate))
	return err
}

// TapDetectionDelegate is notified whenever a circle is tapped
type TapDetectionDelegate interface {
	DidTapCircle(x, y int)
}

type Tap struct {
	X, Y int
}

// TapRecorder is a TapDetectionDelegate that remembers every tap
type TapRecorder struct {
	Taps []Tap
}

func (r *TapRecorder) DidTapCircle(x, y int) {
	r.Taps = append(r.Taps, Tap{X: x, Y: y})
}

type Circle struct {
	Delegate TapDetectionDelegate
}

func (c Circle) Tap(x, y int) {
	if c.Delegate != nil {
		c.Delegate.DidTapCircle(x, y)
	}
}
