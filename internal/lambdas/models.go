package lambdas

type LambdaType string

const LambdaSlashCommand LambdaType = "slash-command"
