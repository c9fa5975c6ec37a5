package services

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	"github.com/univoucher/univoucher-api/internal/client/aws"
	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/contracts"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/metrics"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultFallbackDelay is the pause before asking the redemption API for card
// ids that were missing from the receipt.
const DefaultFallbackDelay = 3 * time.Second

// MintingDeps are the collaborators of MintingService. Recovery is optional.
type MintingDeps struct {
	Inventory interfaces.InventoryStore
	Planner   interfaces.Planner
	Gateway   interfaces.ChainGateway
	Wallet    interfaces.OperatorWallet
	API       interfaces.RedemptionClient
	Admission interfaces.AdmissionPipeline
	Recovery  interfaces.RecoveryPublisher
	Metrics   *metrics.Collector
}

// MintingService runs internal-wallet mint sessions.
type MintingService struct {
	MintingDeps

	sessions      *SessionStore
	contract      common.Address
	fallbackDelay time.Duration
	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
	logger        *zap.Logger
}

// MintingOption configures a MintingService.
type MintingOption func(*MintingService)

func WithFallbackDelay(d time.Duration) MintingOption {
	return func(s *MintingService) {
		s.fallbackDelay = d
	}
}

func WithSessionStore(store *SessionStore) MintingOption {
	return func(s *MintingService) {
		s.sessions = store
	}
}

func NewMintingService(deps MintingDeps, options ...MintingOption) *MintingService {
	s := &MintingService{
		MintingDeps:   deps,
		sessions:      NewSessionStore(DefaultSessionTTL),
		contract:      contracts.UniVoucherAddress,
		fallbackDelay: DefaultFallbackDelay,
		now:           time.Now,
		sleep:         sleepContext,
		logger:        logger.Log,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// StartSession opens a session for productID in Configuring with quantity 1.
func (s *MintingService) StartSession(ctx context.Context, productID int64) (*business.MintSessionView, error) {
	product, err := s.Inventory.GetProductConfig(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, stepError(StepConfigure, err)
	}

	sess := s.sessions.create(product)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.refreshSummary(ctx, sess); err != nil {
		s.sessions.remove(sess.id)
		return nil, err
	}
	s.logger.Info("Mint session started", zap.String("session_id", sess.id), zap.Int64("product_id", productID))
	return sess.view(), nil
}

func (s *MintingService) GetSession(ctx context.Context, sessionID string) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// SetQuantity changes the quantity and re-runs the cost and funds checks.
func (s *MintingService) SetQuantity(ctx context.Context, sessionID string, quantity int) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != business.MintConfiguring {
		return nil, &InvalidStateError{Action: "change quantity", State: sess.state}
	}
	if quantity < 1 {
		return nil, &FormatError{Field: "quantity", Reason: "must be a positive integer"}
	}
	sess.quantity = quantity
	if err := s.refreshSummary(ctx, sess); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// Review re-checks funds and, when they suffice, estimates gas and moves the
// session to Reviewing.
func (s *MintingService) Review(ctx context.Context, sessionID string) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != business.MintConfiguring {
		return nil, &InvalidStateError{Action: "review", State: sess.state}
	}
	if err := s.refreshSummary(ctx, sess); err != nil {
		return nil, err
	}
	if blocking := blockingError(sess.summary); blocking != nil {
		return nil, stepError(StepReview, blocking)
	}

	owner, err := s.Wallet.Address(ctx)
	if err != nil {
		return nil, stepError(StepReview, err)
	}
	estimate, err := s.Planner.EstimateMintGas(ctx, sess.product, sess.quantity, owner)
	if err != nil {
		sess.lastError = err.Error()
		return nil, stepError(StepEstimateGas, err)
	}

	sess.estimate = estimate
	sess.state = business.MintReviewing
	sess.lastError = ""
	sess.updatedAt = s.now()
	return sess.view(), nil
}

// Back returns from Reviewing to Configuring and drops the gas estimate.
func (s *MintingService) Back(ctx context.Context, sessionID string) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != business.MintReviewing {
		return nil, &InvalidStateError{Action: "go back", State: sess.state}
	}
	sess.state = business.MintConfiguring
	sess.estimate = nil
	sess.updatedAt = s.now()
	return sess.view(), nil
}

// CreateMore starts over from a completed session with quantity 1.
func (s *MintingService) CreateMore(ctx context.Context, sessionID string) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != business.MintCompleted {
		return nil, &InvalidStateError{Action: "create more", State: sess.state}
	}
	sess.reset(s.now())
	if err := s.refreshSummary(ctx, sess); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// Submit re-checks funds, then mints the reviewed quantity. A total failure
// returns the session to Reviewing. A mined deposit always completes the session, even when some
// card ids are unresolved; that case is reported as *PartialMintSuccess
// together with the completed view.
func (s *MintingService) Submit(ctx context.Context, sessionID string) (*business.MintSessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.state != business.MintReviewing {
		state := sess.state
		sess.mu.Unlock()
		return nil, &InvalidStateError{Action: "submit", State: state}
	}
	// funds or allowance may have changed while the operator was reviewing
	if err := s.refreshSummary(ctx, sess); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	if blocking := blockingError(sess.summary); blocking != nil {
		sess.lastError = blocking.Error()
		sess.mu.Unlock()
		return nil, stepError(StepReview, blocking)
	}
	sess.state = business.MintSubmitting
	sess.updatedAt = s.now()
	product, quantity := sess.product, sess.quantity
	sess.mu.Unlock()

	result, mintErr := s.mint(ctx, sess.id, product, quantity)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.updatedAt = s.now()

	if result == nil {
		sess.state = business.MintReviewing
		sess.lastError = mintErr.Error()
		return nil, mintErr
	}

	sess.state = business.MintCompleted
	sess.result = result
	sess.estimate = nil
	sess.lastError = ""
	if mintErr != nil {
		sess.lastError = mintErr.Error()
		return sess.view(), mintErr
	}
	return sess.view(), nil
}

func (s *MintingService) session(id string) (*MintSession, error) {
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// refreshSummary must be called with sess.mu held.
func (s *MintingService) refreshSummary(ctx context.Context, sess *MintSession) error {
	owner, err := s.Wallet.Address(ctx)
	if err != nil {
		return stepError(StepConfigure, err)
	}
	summary, err := s.Planner.ComputeCostSummary(ctx, sess.product, sess.quantity, owner)
	if err != nil {
		sess.summary = nil
		sess.lastError = err.Error()
		return stepError(StepConfigure, err)
	}
	sess.summary = summary
	sess.lastError = summary.BlockingReason
	sess.updatedAt = s.now()
	return nil
}

// mintSlot is one card of a MintJob.
type mintSlot struct {
	address      common.Address
	secret       string
	encryptedKey string
}

// MintJob holds the plaintext secrets of an in-flight mint. It is never
// serialized and is dropped when the mint returns.
type MintJob struct {
	method  contracts.DepositMethod
	product business.ProductConfig
	amount  *big.Int
	slots   []mintSlot
}

// Args builds the deposit arrays. Every slot must be prepared.
func (j *MintJob) Args() contracts.DepositArgs {
	args := contracts.DepositArgs{Token: j.product.Token()}
	for _, slot := range j.slots {
		args.SlotIDs = append(args.SlotIDs, slot.address)
		args.Amounts = append(args.Amounts, new(big.Int).Set(j.amount))
		args.Messages = append(args.Messages, "")
		args.EncryptedKeys = append(args.EncryptedKeys, slot.encryptedKey)
	}
	return args
}

func (j *MintJob) pairFor(i int, cardID string) business.CardSecretPair {
	return business.CardSecretPair{CardID: cardID, CardSecret: j.slots[i].secret, SlotID: j.slots[i].address.Hex()}
}

// prepareMintJob generates a slot key and friendly secret per card and
// encrypts each key under its secret. Cards are prepared concurrently and
// the job is returned only when every card succeeded.
func prepareMintJob(ctx context.Context, product business.ProductConfig, quantity int) (*MintJob, error) {
	batch, err := business.BatchKindFor(quantity)
	if err != nil {
		return nil, &FormatError{Field: "quantity", Reason: err.Error()}
	}
	method, err := contracts.SelectDepositMethod(product.TokenKind(), batch)
	if err != nil {
		return nil, err
	}
	amount, err := product.AmountUnits()
	if err != nil {
		return nil, err
	}

	slots := make([]mintSlot, quantity)
	g, gctx := errgroup.WithContext(ctx)
	for i := range slots {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key, err := cardcrypto.GenerateSlotKey()
			if err != nil {
				return err
			}
			defer key.Destroy()

			secret, err := cardcrypto.GenerateFriendlySecret()
			if err != nil {
				return err
			}
			sealed, err := cardcrypto.EncryptPrivateKey(key.PrivateKeyHex(), secret)
			if err != nil {
				return err
			}
			encoded, err := sealed.JSON()
			if err != nil {
				return err
			}
			slots[i] = mintSlot{address: key.Address, secret: secret, encryptedKey: encoded}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MintJob{method: method, product: product, amount: amount, slots: slots}, nil
}

// mint runs the Submitting step. A nil result means nothing reached the chain
// or the deposit reverted.
func (s *MintingService) mint(ctx context.Context, sessionID string, product business.ProductConfig, quantity int) (*business.MintResult, error) {
	chainID := product.ChainID

	job, err := prepareMintJob(ctx, product, quantity)
	if err != nil {
		s.Metrics.ObserveMint("failed", "", chainID, 0)
		return nil, stepError(StepPrepare, err)
	}
	methodName := job.method.Name()

	data, err := contracts.PackDeposit(job.method, job.Args())
	if err != nil {
		s.Metrics.ObserveMint("failed", methodName, chainID, 0)
		return nil, stepError(StepPrepare, err)
	}

	value, err := s.depositValue(ctx, job)
	if err != nil {
		s.Metrics.ObserveMint("failed", methodName, chainID, 0)
		return nil, stepError(StepPrepare, err)
	}

	var hash common.Hash
	var gasLimit uint64
	err = s.Wallet.WithSigner(ctx, func(key *ecdsa.PrivateKey) error {
		call := blockchain.Call{
			From:  crypto.PubkeyToAddress(key.PublicKey),
			To:    s.contract,
			Data:  data,
			Value: value,
		}
		var gasPrice *big.Int
		var err error
		gasLimit, gasPrice, err = s.Planner.EstimateExecutionGas(ctx, chainID, call)
		if err != nil {
			return stepError(StepEstimateGas, err)
		}
		hash, err = s.Gateway.SendTransaction(ctx, chainID, key, call, gasLimit, gasPrice)
		return stepError(StepSendTx, err)
	})
	if err != nil {
		s.Metrics.ObserveMint("failed", methodName, chainID, 0)
		s.logger.Error("Mint transaction not sent",
			zap.String("session_id", sessionID),
			zap.String("method", methodName),
			zap.Error(err))
		return nil, stepError(StepUnlockWallet, err)
	}

	result := &business.MintResult{
		TxHash:   hash.Hex(),
		Method:   methodName,
		GasLimit: gasLimit,
		Pairs:    []business.CardSecretPair{},
	}
	if chain, ok := blockchain.LookupChain(chainID); ok {
		result.ExplorerURL = chain.TxURL(result.TxHash)
	}

	started := s.now()
	receipt, err := s.Gateway.WaitForReceipt(ctx, chainID, hash)
	s.Metrics.ObserveReceiptWait(s.now().Sub(started))
	if err != nil {
		if receipt != nil {
			// mined and reverted, nothing was deposited
			s.Metrics.ObserveMint("reverted", methodName, chainID, 0)
			return nil, stepError(StepWaitReceipt, err)
		}
		result.Partial = true
		result.Pending = true
		result.Unresolved = job.pairs(nil)
		partial := &PartialMintSuccess{TxHash: result.TxHash, Unresolved: result.Unresolved, Pending: true, Err: err}
		s.Metrics.ObserveMint("pending", methodName, chainID, quantity)
		s.publishRecovery(ctx, sessionID, product, result, partial)
		return result, stepError(StepWaitReceipt, partial)
	}

	resolution := s.resolveCards(ctx, job, receipt)
	result.Pairs = resolution.Resolved
	result.Unresolved = resolution.Unresolved
	result.Partial = !resolution.Complete()

	var admitErr error
	if len(result.Pairs) > 0 {
		result.Admission, admitErr = s.admitMinted(ctx, product.ProductID, result.Pairs)
		if admitErr != nil {
			s.logger.Error("Minted cards were not admitted",
				zap.String("tx_hash", result.TxHash),
				zap.Int("cards", len(result.Pairs)),
				zap.Error(admitErr))
			result.Partial = true
		}
	}

	if result.Partial {
		partial := &PartialMintSuccess{
			TxHash:      result.TxHash,
			Pairs:       result.Pairs,
			Unresolved:  result.Unresolved,
			NotAdmitted: admitErr != nil,
			Err:         errors.Join(resolution.Err, admitErr),
		}
		step := StepResolveCards
		if resolution.Complete() {
			step = StepAdmitCards
		}
		s.Metrics.ObserveMint("partial", methodName, chainID, quantity)
		s.publishRecovery(ctx, sessionID, product, result, partial)
		return result, stepError(step, partial)
	}

	s.Metrics.ObserveMint("success", methodName, chainID, quantity)
	s.logger.Info("Mint completed",
		zap.String("session_id", sessionID),
		zap.String("tx_hash", result.TxHash),
		zap.String("method", methodName),
		zap.Int("cards", len(result.Pairs)))
	return result, nil
}

// depositValue is the native value of the deposit: amount plus the on-chain
// fee, per card. ERC-20 deposits carry no value.
func (s *MintingService) depositValue(ctx context.Context, job *MintJob) (*big.Int, error) {
	if !job.method.Payable() {
		return nil, nil
	}
	data, err := contracts.PackCalculateFee(job.amount)
	if err != nil {
		return nil, err
	}
	raw, err := s.Gateway.Call(ctx, job.product.ChainID, blockchain.Call{To: s.contract, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to read on-chain fee: %w", err)
	}
	fee, err := contracts.UnpackCalculateFee(raw)
	if err != nil {
		return nil, err
	}
	args := job.Args()
	value := new(big.Int).Mul(fee, big.NewInt(int64(args.Len())))
	return value.Add(value, args.TotalAmount()), nil
}

// CardResolution is the outcome of matching minted slots to card ids.
type CardResolution struct {
	Resolved   []business.CardSecretPair
	Unresolved []business.CardSecretPair
	Err        error
}

func (r CardResolution) Complete() bool {
	return len(r.Unresolved) == 0
}

// pairs returns the pair for every slot, using ids[i] as the card id when set.
func (j *MintJob) pairs(ids []string) []business.CardSecretPair {
	out := make([]business.CardSecretPair, len(j.slots))
	for i := range j.slots {
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		out[i] = j.pairFor(i, id)
	}
	return out
}

// resolveCards reads card ids from the receipt, then asks the redemption API
// for any slot the receipt did not cover.
func (s *MintingService) resolveCards(ctx context.Context, job *MintJob, receipt *types.Receipt) CardResolution {
	ids, err := s.resolveFromReceipt(job, receipt)
	if err != nil {
		s.logger.Warn("Could not parse CardCreated events", zap.String("tx_hash", receipt.TxHash.Hex()), zap.Error(err))
	}

	var missing []int
	for i, id := range ids {
		if id == "" {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		s.logger.Info("Falling back to redemption API for card ids",
			zap.String("tx_hash", receipt.TxHash.Hex()),
			zap.Int("missing", len(missing)))
		err = s.resolveFromFallbackAPI(ctx, job, ids, missing)
	}

	resolution := CardResolution{Resolved: []business.CardSecretPair{}, Err: err}
	for i, id := range ids {
		if id == "" {
			resolution.Unresolved = append(resolution.Unresolved, job.pairFor(i, ""))
			continue
		}
		resolution.Resolved = append(resolution.Resolved, job.pairFor(i, id))
	}
	if !resolution.Complete() && resolution.Err == nil {
		resolution.Err = fmt.Errorf("%d card id(s) not found", len(resolution.Unresolved))
	}
	return resolution
}

// resolveFromReceipt returns one card id per slot, matched on slot address.
// Slots without an event get "".
func (s *MintingService) resolveFromReceipt(job *MintJob, receipt *types.Receipt) ([]string, error) {
	ids := make([]string, len(job.slots))
	events, err := contracts.ParseCardCreated(receipt.Logs, s.contract)
	if err != nil {
		return ids, err
	}

	index := make(map[common.Address]int, len(job.slots))
	for i, slot := range job.slots {
		index[slot.address] = i
	}
	for _, ev := range events {
		if i, ok := index[ev.SlotID]; ok && ev.CardID != nil {
			ids[i] = ev.CardID.String()
		}
	}
	return ids, nil
}

// resolveFromFallbackAPI fills ids[i] for every i in missing after the
// fallback delay.
func (s *MintingService) resolveFromFallbackAPI(ctx context.Context, job *MintJob, ids []string, missing []int) error {
	if err := s.sleep(ctx, s.fallbackDelay); err != nil {
		return err
	}
	var errs []error
	for _, i := range missing {
		card, err := s.API.GetCardBySlot(ctx, job.slots[i].address.Hex())
		if err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", job.slots[i].address.Hex(), err))
			continue
		}
		if id := strings.TrimSpace(card.CardID.String()); id != "" {
			ids[i] = id
		}
	}
	return errors.Join(errs...)
}

// admitMinted sends minted pairs through validation and admission like any
// other row.
func (s *MintingService) admitMinted(ctx context.Context, productID int64, pairs []business.CardSecretPair) (*business.AdmissionSummary, error) {
	if s.Admission == nil {
		return nil, nil
	}
	inputs := make([]business.CardInput, len(pairs))
	for i, pair := range pairs {
		inputs[i] = business.CardInput{CardID: pair.CardID, CardSecret: pair.CardSecret}
	}
	summary, _, err := s.Admission.ValidateAndAdmit(ctx, productID, inputs, business.SourceMint)
	if err != nil {
		return nil, fmt.Errorf("failed to admit minted cards: %w", err)
	}
	return summary, nil
}

// publishRecovery records a partial mint. Secrets are never included.
func (s *MintingService) publishRecovery(ctx context.Context, sessionID string, product business.ProductConfig, result *business.MintResult, partial *PartialMintSuccess) {
	s.logger.Warn("Partial mint",
		zap.String("session_id", sessionID),
		zap.String("tx_hash", result.TxHash),
		zap.Int("resolved", len(result.Pairs)),
		zap.Int("unresolved", len(result.Unresolved)),
		zap.Bool("pending", result.Pending))

	if s.Recovery == nil {
		return
	}
	record := aws.PartialMintRecord{
		SessionID:       sessionID,
		ProductID:       product.ProductID,
		ChainID:         product.ChainID,
		TxHash:          result.TxHash,
		ExplorerURL:     result.ExplorerURL,
		ResolvedCardIDs: []string{},
		UnresolvedSlots: []string{},
		Pending:         result.Pending,
		Reason:          partial.Error(),
		OccurredAt:      s.now().UTC(),
	}
	for _, pair := range result.Pairs {
		record.ResolvedCardIDs = append(record.ResolvedCardIDs, pair.CardID)
	}
	for _, pair := range result.Unresolved {
		record.UnresolvedSlots = append(record.UnresolvedSlots, pair.SlotID)
	}
	if err := s.Recovery.PublishPartialMint(ctx, record); err != nil {
		s.logger.Error("Failed to publish partial mint", zap.String("tx_hash", result.TxHash), zap.Error(err))
	}
}

