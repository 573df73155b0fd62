package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/amath/fourier"
	"github.com/sartorproj/amath/sample"
)

type transformKernel func(data []complex128, threads int) error

func (a *app) transformCommands() []*cobra.Command {
	var magnitude bool
	dft := a.transformCommand("dft", "Forward discrete Fourier transform", fourier.Forward, &magnitude)
	dft.Flags().BoolVarP(&magnitude, "magnitude", "m", false, "print the magnitude of each coefficient instead")

	return []*cobra.Command{
		dft,
		a.transformCommand("idft", "Inverse discrete Fourier transform (scaled by 1/n)", fourier.Inverse, nil),
	}
}

func (a *app) transformCommand(name, short string, kernel transformKernel, magnitude *bool) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, closeFn, err := a.openInput()
			if err != nil {
				return err
			}
			defer closeFn()

			data, err := sample.ReadComplex(r)
			if err != nil {
				return err
			}

			workers := a.cfg.Workers()
			err = a.observe(name, len(data), workers, func() error {
				return kernel(data, workers)
			})
			if err != nil {
				return err
			}

			if magnitude != nil && *magnitude {
				return a.printVector(fourier.Magnitudes(data))
			}
			return sample.WriteComplex(a.stdout, data, a.cfg.Output.Precision)
		},
	}
}
