package panel_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/panel"
)

func snapshot(reg *body.Registry, name string) body.Body {
	var out body.Body
	Expect(reg.View(name, func(b *body.Body) { out = *b })).To(Succeed())
	return out
}

var _ = Describe("Bridge", func() {
	var (
		reg *body.Registry
		br  *panel.Bridge
	)

	BeforeEach(func() {
		var err error
		reg, err = catalog.NewRegistry()
		Expect(err).NotTo(HaveOccurred())
		br = panel.NewBridge(reg)
	})

	Describe("opening", func() {
		It("opens once and rejects a second open", func() {
			Expect(br.Open()).To(Succeed())
			Expect(br.IsOpen()).To(BeTrue())
			Expect(br.Open()).To(MatchError(panel.ErrAlreadyOpen))
		})

		It("can reopen after close", func() {
			Expect(br.Open()).To(Succeed())
			br.Close()
			Expect(br.Open()).To(Succeed())
		})
	})

	Describe("selection", func() {
		It("highlights exactly the selected body", func() {
			Expect(br.Select("Mars")).To(Succeed())
			Expect(br.Select("Jupiter")).To(Succeed())

			Expect(snapshot(reg, "Mars").Highlighted).To(BeFalse())
			Expect(snapshot(reg, "Jupiter").Highlighted).To(BeTrue())
			Expect(br.Selected()).To(Equal("Jupiter"))
		})

		It("rejects unknown bodies", func() {
			Expect(br.Select("Pluto")).To(MatchError(body.ErrUnknownBody))
			Expect(br.Selected()).To(BeEmpty())
		})

		It("populates fields from live state", func() {
			Expect(br.Select("Earth")).To(Succeed())
			earth := snapshot(reg, "Earth")

			f := br.Fields()
			Expect(f.Mass).To(Equal("5.97e+24"))
			Expect(f.OrbitalSpeed).NotTo(Equal(panel.NotApplicable))
			Expect(f.Density).NotTo(BeEmpty())
			Expect(earth.Density).To(BeNumerically("~", 5510, 60))
		})

		It("shows n/a orbital speed for the central body", func() {
			Expect(br.Select("Sun")).To(Succeed())
			Expect(br.Fields().OrbitalSpeed).To(Equal(panel.NotApplicable))
		})
	})

	Describe("applying edits", func() {
		BeforeEach(func() {
			Expect(br.Select("Earth")).To(Succeed())
		})

		It("requires a selection", func() {
			br.Close()
			Expect(br.ApplyEdits(panel.Fields{})).To(MatchError(panel.ErrNoSelection))
		})

		It("recomputes density when mass changes", func() {
			before := snapshot(reg, "Earth")

			f := br.Fields()
			f.Mass = "1.194e25" // double the mass
			Expect(br.ApplyEdits(f)).To(Succeed())

			after := snapshot(reg, "Earth")
			Expect(after.Mass).To(Equal(1.194e25))
			Expect(after.Density).To(BeNumerically("~", 2*before.Density, before.Density*0.01))
		})

		It("recomputes mass when density is explicitly edited", func() {
			before := snapshot(reg, "Earth")

			f := br.Fields()
			f.Density = "11020" // roughly double
			Expect(br.ApplyEdits(f)).To(Succeed())

			after := snapshot(reg, "Earth")
			Expect(after.Density).To(Equal(11020.0))
			Expect(after.Mass).To(BeNumerically(">", before.Mass*1.9))
			Expect(after.Mass).To(BeNumerically("<", before.Mass*2.1))
		})

		It("lets mass win when density is merely echoed back", func() {
			f := br.Fields()
			f.Mass = "1e25"
			Expect(br.ApplyEdits(f)).To(Succeed())

			after := snapshot(reg, "Earth")
			Expect(after.Mass).To(Equal(1e25))
			Expect(after.Density).To(Equal(body.ComputeDensity(after.Mass, after.Radius)))
		})

		It("re-derives orbital speed from distance", func() {
			before := snapshot(reg, "Earth")
			f := br.Fields()
			f.Mass = "1e25"
			Expect(br.ApplyEdits(f)).To(Succeed())

			after := snapshot(reg, "Earth")
			Expect(after.OrbitalSpeed).To(Equal(before.OrbitalSpeed))
		})

		It("applies rotation speed directly", func() {
			f := br.Fields()
			f.RotationSpeed = "0.25"
			Expect(br.ApplyEdits(f)).To(Succeed())
			Expect(snapshot(reg, "Earth").RotationSpeed).To(Equal(0.25))
		})

		It("refreshes the panel fields after a successful apply", func() {
			f := br.Fields()
			f.Mass = "1e25"
			Expect(br.ApplyEdits(f)).To(Succeed())
			Expect(br.Fields().Mass).To(Equal("1e+25"))
		})

		Context("with invalid input", func() {
			It("rejects non-numeric fields and leaves the body untouched", func() {
				before := snapshot(reg, "Earth")

				f := br.Fields()
				f.Mass = "heavy"
				f.RotationSpeed = "0.5"
				Expect(br.ApplyEdits(f)).To(MatchError(panel.ErrNotNumeric))

				after := snapshot(reg, "Earth")
				Expect(after.Mass).To(Equal(before.Mass))
				Expect(after.RotationSpeed).To(Equal(before.RotationSpeed))
			})

			It("rejects non-positive radius", func() {
				f := br.Fields()
				f.Radius = "0"
				Expect(br.ApplyEdits(f)).To(MatchError(panel.ErrOutOfRange))
			})

			It("rejects non-positive mass", func() {
				f := br.Fields()
				f.Mass = "-5e24"
				Expect(br.ApplyEdits(f)).To(MatchError(panel.ErrOutOfRange))
			})

			It("rejects non-positive density", func() {
				f := br.Fields()
				f.Density = "-1"
				Expect(br.ApplyEdits(f)).To(MatchError(panel.ErrOutOfRange))
			})
		})
	})

	Describe("restoring defaults", func() {
		It("reverts an edited body and refreshes the fields", func() {
			Expect(br.Select("Mars")).To(Succeed())
			original := snapshot(reg, "Mars")

			f := br.Fields()
			f.Mass = "1e26"
			f.RotationSpeed = "3"
			Expect(br.ApplyEdits(f)).To(Succeed())

			Expect(br.RestoreSelected()).To(Succeed())
			restored := snapshot(reg, "Mars")
			Expect(restored.Mass).To(Equal(original.Mass))
			Expect(restored.RotationSpeed).To(Equal(original.RotationSpeed))
			Expect(restored.Density).To(Equal(original.Density))
			Expect(br.Fields().Mass).To(Equal("6.42e+23"))
		})

		It("requires a selection", func() {
			Expect(br.RestoreSelected()).To(MatchError(panel.ErrNoSelection))
		})
	})

	Describe("closing", func() {
		It("clears the selection and every highlight", func() {
			Expect(br.Open()).To(Succeed())
			Expect(br.Select("Venus")).To(Succeed())

			br.Close()
			Expect(br.IsOpen()).To(BeFalse())
			Expect(br.Selected()).To(BeEmpty())
			Expect(reg.Highlighted()).To(BeEmpty())
			Expect(br.Fields()).To(Equal(panel.Fields{}))
		})
	})
})

var _ = Describe("ClickDetector", func() {
	var base time.Time

	BeforeEach(func() {
		base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	})

	It("detects two presses inside the window", func() {
		d := panel.NewClickDetector(0)
		Expect(d.Press(base)).To(BeFalse())
		Expect(d.Press(base.Add(300 * time.Millisecond))).To(BeTrue())
	})

	It("ignores slow presses", func() {
		d := panel.NewClickDetector(0)
		Expect(d.Press(base)).To(BeFalse())
		Expect(d.Press(base.Add(600 * time.Millisecond))).To(BeFalse())
	})

	It("treats each press as the start of the next window", func() {
		d := panel.NewClickDetector(0)
		Expect(d.Press(base)).To(BeFalse())
		Expect(d.Press(base.Add(600 * time.Millisecond))).To(BeFalse())
		Expect(d.Press(base.Add(900 * time.Millisecond))).To(BeTrue())
	})

	It("honors a custom window", func() {
		d := panel.NewClickDetector(100 * time.Millisecond)
		Expect(d.Press(base)).To(BeFalse())
		Expect(d.Press(base.Add(150 * time.Millisecond))).To(BeFalse())
	})
})
