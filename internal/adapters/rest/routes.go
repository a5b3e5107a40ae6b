package rest

const (
	routeLoginAccountPassword = "/authenticate/login/password/account_id"
	routeLoginAPIKey          = "/authenticate/login/key"
	routeLoginNamePassword    = "/authenticate/login/password/name"
	routeLoginEmailPassword   = "/authenticate/login/password/email"
	routeLoginDefault         = "/authenticate/login/default/{account_id}"
	routeLoginEmailOTP        = "/authenticate/login/email/otp"
	routeVerifyEmailOTP       = "/authenticate/login/email/otp/verify"

	routeSignupDefault  = "/authenticate/signup/default"
	routeSignupPassword = "/authenticate/signup/password"

	routeRegisterAPIKey   = "/authenticate/register/key"
	routeRegisterPassword = "/authenticate/register/password"
	routeRegisterEmail    = "/authenticate/register/email"
	routeVerifyEmail      = "/authenticate/register/email/verify"
	routeResendEmailCode  = "/authenticate/register/email/resend"

	routeCreateModels      = "/persist/models"
	routeCreateInvocations = "/persist/invocations/by_model_names"
	routeStatusFlags       = "/persist/flags/query"

	routeAllocateAssetSocket = "/file_push/socket/asset"
	routeAllocateInputSocket = "/file_push/socket/input"
	routeCompleteTransfer    = "/file_push/complete"
	routeSubmitAssetLinks    = "/file_pull/asset/links"
	routeSubmitInputLinks    = "/file_pull/input/links"

	routeInvocationOutput = "/retrieve/output/{account_id}/{model_id}/{invocation_id}/{output_id}"
)
