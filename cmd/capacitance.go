package main

import (
	"capsim/element/capacitor"
	"capsim/utils"
	"fmt"

	"github.com/spf13/cobra"
)

func newCapacitanceCmd(c *cli) *cobra.Command {
	var area, separation, permittivity string
	cmd := &cobra.Command{
		Use:   "capacitance",
		Short: "计算平行板电容并格式化输出",
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := make([]float64, 3)
			for i, s := range []string{area, separation, permittivity} {
				v, err := utils.ParseValue(s)
				if err != nil {
					return err
				}
				values[i] = v
			}
			capacitance, err := capacitor.Capacitance(values[0], values[1], values[2])
			if err != nil {
				c.log.Error().Err(err).Msg("计算电容失败")
				return err
			}
			label, err := utils.FormatCapacitance(capacitance)
			if err != nil {
				return err
			}
			c.log.Debug().Float64("farad", capacitance).Msg("电容")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "极板面积(m²)")
	cmd.Flags().StringVar(&separation, "separation", "", "极板间距(m)")
	cmd.Flags().StringVar(&permittivity, "permittivity", "", "相对介电常数")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("separation")
	_ = cmd.MarkFlagRequired("permittivity")
	return cmd
}
