package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName               = "bool"
	booleanFlagTrueLiteral            = "true"
	booleanFlagAcceptedValuesListing  = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueErrorLabel = "invalid boolean value"
	flagPrefix                        = "--"
	argumentTerminator                = "--"
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// booleanFlagValue accepts the literals in booleanFlagLiterals and treats a
// bare flag as true.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf("%s %q", booleanFlagInvalidValueErrorLabel, input)
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = booleanFlagTrueLiteral
	}
	parsed, ok := booleanFlagLiterals[normalized]
	if !ok {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", booleanFlagInvalidValueErrorLabel, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return booleanFlagTrueLiteral
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.Var(&booleanFlagValue{target: target, flagKey: name}, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments rewrites "--flag value" into "--flag=value" for
// boolean flags when value is a boolean literal. A literal that names an
// existing path is left alone so that it stays the positional directory.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	return normalizeBooleanFlagArgumentsWith(command, arguments, pathExists)
}

func normalizeBooleanFlagArgumentsWith(command *cobra.Command, arguments []string, isExistingPath func(string) bool) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	for argumentIndex := 0; argumentIndex < len(arguments); argumentIndex++ {
		currentArgument := arguments[argumentIndex]
		if currentArgument == argumentTerminator {
			normalized = append(normalized, arguments[argumentIndex:]...)
			break
		}
		if rewritten, consumed := joinBooleanLiteral(currentArgument, arguments[argumentIndex+1:], booleanFlags, isExistingPath); consumed {
			normalized = append(normalized, rewritten)
			argumentIndex++
			continue
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}

// joinBooleanLiteral reports whether currentArgument is a boolean flag whose
// value is the first of remaining, returning the joined form.
func joinBooleanLiteral(currentArgument string, remaining []string, booleanFlags map[string]struct{}, isExistingPath func(string) bool) (string, bool) {
	if !strings.HasPrefix(currentArgument, flagPrefix) || strings.Contains(currentArgument, "=") || len(remaining) == 0 {
		return "", false
	}
	flagName := strings.TrimPrefix(currentArgument, flagPrefix)
	if _, exists := booleanFlags[flagName]; !exists {
		return "", false
	}
	nextArgument := remaining[0]
	if strings.HasPrefix(nextArgument, "-") {
		return "", false
	}
	literal := strings.ToLower(strings.TrimSpace(nextArgument))
	if _, valid := booleanFlagLiterals[literal]; !valid {
		return "", false
	}
	if isExistingPath != nil && isExistingPath(nextArgument) {
		return "", false
	}
	return fmt.Sprintf("%s%s=%s", flagPrefix, flagName, nextArgument), true
}

func pathExists(path string) bool {
	_, statError := os.Stat(path)
	return statError == nil
}

func collectBooleanFlagNames(command *cobra.Command, target map[string]struct{}) {
	if command == nil || target == nil {
		return
	}
	visit := func(flagSet *pflag.FlagSet) {
		if flagSet == nil {
			return
		}
		flagSet.VisitAll(func(flag *pflag.Flag) {
			if flag == nil || flag.Value == nil {
				return
			}
			if _, isLiteralFlag := flag.Value.(*booleanFlagValue); isLiteralFlag {
				target[flag.Name] = struct{}{}
			}
		})
	}
	visit(command.PersistentFlags())
	visit(command.Flags())
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, target)
	}
}
