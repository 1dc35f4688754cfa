package lspci

import (
	"io"

	"github.com/spf13/cobra"

	"golspci/pkg/errorutil"
	"golspci/pkg/hw/pci/view"
)

// TreeCmd 以总线树的形式显示设备
func TreeCmd() *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "以 ASCII 树显示总线和设备",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := view.Tree(cmd.OutOrStdout(), devices); err != nil {
				return exitError("输出失败", err)
			}
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// DotCmd 输出 graphviz 格式的总线图
//
//	golspci dot | dot -Tsvg > pci.svg
func DotCmd() *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "输出 graphviz DOT 格式的总线/设备图",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out, err := view.Dot(devices)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 DOT 失败", err)
			}
			if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
				return exitError("输出失败", err)
			}
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}
